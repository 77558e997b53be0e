package field

// Braid merges layers into one, keeping per coordinate the mark with
// the highest tone. The scan is left to right over the supplied layers,
// then mark order within each layer; the comparison is inclusive, so
// the later-scanned mark wins ties. Output order is the first-seen
// coordinate order — a replacement keeps the coordinate's original
// slot.
func Braid(layers ...*Layer) *Layer {
	merged := &Layer{}
	type key struct{ x, y int }
	slot := make(map[key]int)
	for _, layer := range layers {
		for _, m := range layer.Marks {
			k := key{m.X, m.Y}
			if i, ok := slot[k]; ok {
				if merged.Marks[i].Tone <= m.Tone {
					merged.Marks[i] = m
				}
				continue
			}
			slot[k] = len(merged.Marks)
			merged.Marks = append(merged.Marks, m)
		}
	}
	return merged
}
