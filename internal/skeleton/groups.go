package skeleton

// CollectGroup resolves a group name to the bone ids it contains, following
// nested Includes. An explicit visited set guarantees termination when group
// includes form a cycle. Unknown names resolve to nothing. The result keeps
// first-seen order with duplicates removed.
func (p Preset) CollectGroup(name string) []string {
	visited := make(map[string]bool)
	seen := make(map[string]bool)
	var out []string
	p.collectGroup(name, visited, seen, &out)
	return out
}

func (p Preset) collectGroup(name string, visited, seen map[string]bool, out *[]string) {
	if visited[name] {
		return
	}
	visited[name] = true

	g, ok := p.Groups[name]
	if !ok {
		return
	}
	for _, id := range g.Bones {
		if !seen[id] {
			seen[id] = true
			*out = append(*out, id)
		}
	}
	for _, inc := range g.Includes {
		p.collectGroup(inc, visited, seen, out)
	}
}

// CollectNames resolves a mixed list of group names and bone ids. Names that
// match a group expand to its bones; anything else is taken as a bone id.
func (p Preset) CollectNames(names []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range names {
		if _, isGroup := p.Groups[name]; isGroup {
			for _, id := range p.CollectGroup(name) {
				if !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
			continue
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
