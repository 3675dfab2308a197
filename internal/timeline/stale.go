package timeline

import "sort"

// Guard remembers audio URLs that failed to load so they are excluded from
// synchronization instead of being retried on every tick. A URL stays
// excluded for as long as any current clip references it; once nothing does,
// it is forgotten, so a regenerated identical URL gets a fresh chance.
type Guard struct {
	stale map[string]struct{}
}

// NewGuard returns an empty stale-URL guard
func NewGuard() *Guard {
	return &Guard{stale: make(map[string]struct{})}
}

// MarkFailed records a failed URL. Returns true the first time the URL is
// marked, false if it was already known stale.
func (g *Guard) MarkFailed(url string) bool {
	if url == "" {
		return false
	}
	if _, ok := g.stale[url]; ok {
		return false
	}
	g.stale[url] = struct{}{}
	return true
}

// IsStale reports whether the URL has failed before
func (g *Guard) IsStale(url string) bool {
	_, ok := g.stale[url]
	return ok
}

// Retain intersects the remembered URLs with those still referenced by a
// freshly built track set. Called on every material rebuild (language switch,
// scene data change).
func (g *Guard) Retain(urls []string) {
	if len(g.stale) == 0 {
		return
	}
	referenced := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		referenced[url] = struct{}{}
	}
	for url := range g.stale {
		if _, ok := referenced[url]; !ok {
			delete(g.stale, url)
		}
	}
}

// Filter returns the set with every stale-URL clip dropped
func (g *Guard) Filter(set AudioTrackSet) AudioTrackSet {
	if len(g.stale) == 0 {
		return set
	}

	keep := func(c *Clip) *Clip {
		if c == nil || g.IsStale(c.URL) {
			return nil
		}
		return c
	}

	filtered := AudioTrackSet{
		Voiceover:   keep(set.Voiceover),
		Description: keep(set.Description),
		Music:       keep(set.Music),
	}
	for _, clip := range set.Dialogue {
		if !g.IsStale(clip.URL) {
			filtered.Dialogue = append(filtered.Dialogue, clip)
		}
	}
	for _, clip := range set.Effects {
		if !g.IsStale(clip.URL) {
			filtered.Effects = append(filtered.Effects, clip)
		}
	}
	return filtered
}

// Stale returns the currently excluded URLs, sorted
func (g *Guard) Stale() []string {
	urls := make([]string, 0, len(g.stale))
	for url := range g.stale {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}
