package gyro

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

// BoxForVectors returns the bounding box of a set of points.
func BoxForVectors(vectors []Vector) Box {
	if len(vectors) == 0 {
		return Box{}
	}
	min := vectors[0]
	max := vectors[0]
	for _, v := range vectors {
		min = min.Min(v)
		max = max.Max(v)
	}
	return Box{min, max}
}

// BoxForBoxes returns the union of a set of boxes.
func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return Box{}
	}
	b := boxes[0]
	for _, x := range boxes[1:] {
		b = b.Extend(x)
	}
	return b
}

func (a Box) Extend(b Box) Box {
	return Box{a.Min.Min(b.Min), a.Max.Max(b.Max)}
}

func (a Box) Center() Vector {
	return a.Min.Lerp(a.Max, 0.5)
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}
