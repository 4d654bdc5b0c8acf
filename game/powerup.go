package game

// slowmo tracks the slow-motion power-up in simulated seconds.
type slowmo struct {
	active    bool
	remaining float64
}

func (s *slowmo) factor() float64 {
	if s.active {
		return SlowmoFactor
	}
	return 1
}

// activate applies a power-up effect to the session.
func (s *Session) activate(effect PowerUpEffect) {
	switch effect {
	case EffectStorm:
		s.storm()
	case EffectShield:
		// Shield has no gameplay effect yet; hosts may still show it.
		s.host.Handle(PowerUpActivated{Effect: effect})
		s.host.Handle(ShieldActivated{})
		s.host.Handle(PlaySound{Category: SoundCuts, Sub: SubPowerUp})
	case EffectSlowmo:
		s.startSlowmo()
	}
}

// storm clears every live good entity, scoring each one.
func (s *Session) storm() {
	if len(s.entities) == 0 {
		return
	}
	s.host.Handle(PowerUpActivated{Effect: EffectStorm})

	// Reverse order so removal does not skip entries.
	for i := len(s.entities) - 1; i >= 0; i-- {
		e := s.entities[i]
		if !e.IsGood() {
			continue
		}
		e.cut = true
		s.grid.Remove(e)
		s.removeAt(i)

		gained := s.score.StormCut()
		mult := s.score.Multiplier()
		s.host.Handle(EntityCut{Entity: e, Points: gained, Storm: true})
		s.host.Handle(ComboFeedback{X: e.X, Y: e.Y - 30, Multiplier: mult, Label: ComboLabel(mult)})
	}
	s.host.Handle(ScoreChanged{Score: s.score})
	s.host.Handle(PlaySound{Category: SoundPowerUps, Sub: SubKunaiStorm})
}

// startSlowmo slows the session down. Re-triggering while active is ignored.
func (s *Session) startSlowmo() {
	if s.slowmo.active {
		return
	}
	s.slowmo = slowmo{active: true, remaining: SlowmoDuration}
	s.host.Handle(PowerUpActivated{Effect: EffectSlowmo})
	s.host.Handle(SlowmoChanged{Active: true, Factor: SlowmoFactor})
	s.host.Handle(PlaySound{Category: SoundPowerUps, Sub: SubSlowmo})
}

func (s *Session) tickSlowmo(dt float64) {
	if !s.slowmo.active {
		return
	}
	s.slowmo.remaining -= dt
	if s.slowmo.remaining <= 0 {
		s.stopSlowmo()
	}
}

func (s *Session) stopSlowmo() {
	if !s.slowmo.active {
		return
	}
	s.slowmo = slowmo{}
	s.host.Handle(SlowmoChanged{Active: false, Factor: 1})
}
