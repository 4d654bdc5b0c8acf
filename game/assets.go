package game

import (
	"sort"
	"strconv"
)

// Icon categories
const (
	CategorySubreddits = "subreddits"
	CategoryMemes      = "memes"
	CategoryHazards    = "hazards"
	CategoryPowerUps   = "powerUps"
)

// Sound categories and subcategories
const (
	SoundCuts     = "cuts"
	SoundEffects  = "effects"
	SoundPowerUps = "powerUps"

	SubDefault    = "default"
	SubHazard     = "hazard"
	SubPowerUp    = "powerUp"
	SubJump       = "jump"
	SubKunaiStorm = "kunaiStorm"
	SubSlowmo     = "Slowmo"
)

// GoodCategories are the icon categories good entities draw from.
var GoodCategories = []string{CategorySubreddits, CategoryMemes}

// Asset is one keyed file reference.
type Asset struct {
	Key string
	URL string
}

// Assets is the immutable registry built once from the icon and sound manifests.
type Assets struct {
	icons  map[string][]Asset
	sounds map[string]map[string][]Asset
	urls   map[string]string
}

// NewAssets builds a registry. icons maps category to URLs, sounds maps
// category to subcategory to URLs. Keys are "<category>_<i>" for icons and
// "<category>_<sub>_<i>" for sounds.
func NewAssets(icons map[string][]string, sounds map[string]map[string][]string) *Assets {
	a := &Assets{
		icons:  make(map[string][]Asset, len(icons)),
		sounds: make(map[string]map[string][]Asset, len(sounds)),
		urls:   make(map[string]string),
	}
	for category, urls := range icons {
		list := make([]Asset, len(urls))
		for i, u := range urls {
			key := category + "_" + strconv.Itoa(i)
			list[i] = Asset{Key: key, URL: u}
			a.urls[key] = u
		}
		a.icons[category] = list
	}
	for category, subs := range sounds {
		bySub := make(map[string][]Asset, len(subs))
		for sub, urls := range subs {
			list := make([]Asset, len(urls))
			for i, u := range urls {
				key := category + "_" + sub + "_" + strconv.Itoa(i)
				list[i] = Asset{Key: key, URL: u}
				a.urls[key] = u
			}
			bySub[sub] = list
		}
		a.sounds[category] = bySub
	}
	return a
}

// Icons returns a copy of the icons in a category.
func (a *Assets) Icons(category string) []Asset {
	if a == nil {
		return nil
	}
	return append([]Asset(nil), a.icons[category]...)
}

// GoodIcons returns the icons good entities are drawn from, in category order.
func (a *Assets) GoodIcons() []Asset {
	var out []Asset
	for _, c := range GoodCategories {
		out = append(out, a.Icons(c)...)
	}
	return out
}

// Sounds returns a copy of the sounds in a category and subcategory.
func (a *Assets) Sounds(category, sub string) []Asset {
	if a == nil {
		return nil
	}
	return append([]Asset(nil), a.sounds[category][sub]...)
}

// URL resolves an asset key.
func (a *Assets) URL(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	u, ok := a.urls[key]
	return u, ok
}

// Keys returns every registered key, sorted.
func (a *Assets) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, 0, len(a.urls))
	for k := range a.urls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
