// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot3d

// alongOffset is the step along the axis used to give tick
// labels a direction.
const alongOffset = 1e-3

// Face is a pair of fixed positions of an axis in its two
// perpendicular directions, selecting which edge of the box it is on.
type Face struct {
	P1, P2 float64
}

// Segment is a straight line between two points in logical coordinates.
type Segment struct {
	Start, End Vector3
}

// TickMark is the geometry of one tick on one face.
type TickMark struct {
	// FaceIndex is the index of the face in the list passed to [TickMarks].
	FaceIndex int

	// Frac is the logical position of the tick along the axis.
	Frac float64

	// OnAxis is the point on the axis line.
	OnAxis Vector3

	// End1 and End2 are the ends of the tick lines drawn in the
	// first and second perpendicular directions.
	End1, End2 Vector3

	// Along is a point just along the axis from OnAxis, used
	// to orient labels. It is not drawn.
	Along Vector3
}

// mirrorValues returns the positions an axis at p is drawn at:
// both far and near sides of the box if p is on a side, else p.
func mirrorValues(p float64) []float64 {
	if p == 0 || p == 1 {
		return []float64{1, 0}
	}
	return []float64{p}
}

// MirrorFaces returns the faces an axis at perpendicular positions
// p1, p2 is drawn on. Without autoMirror that is just (p1, p2).
// Otherwise each position lying on a side of the box (0 or 1) is
// drawn on both sides, far side first, giving up to four faces.
func MirrorFaces(p1, p2 float64, autoMirror bool) []Face {
	if !autoMirror {
		return []Face{{p1, p2}}
	}
	l1, l2 := mirrorValues(p1), mirrorValues(p2)
	faces := make([]Face, 0, len(l1)*len(l2))
	for _, a := range l1 {
		for _, b := range l2 {
			faces = append(faces, Face{a, b})
		}
	}
	return faces
}

// AxisPoint returns the point at position along on an axis in
// direction dir lying on the given face.
func AxisPoint(dir Dims, along float64, f Face) Vector3 {
	var v Vector3
	d1, d2 := perpDims(dir)
	v.SetDim(dir, along)
	v.SetDim(d1, f.P1)
	v.SetDim(d2, f.P2)
	return v
}

// AxisLineSegments returns one axis line from lower to upper for each face.
func AxisLineSegments(dir Dims, lower, upper float64, faces []Face) []Segment {
	segs := make([]Segment, len(faces))
	for i, f := range faces {
		segs[i] = Segment{AxisPoint(dir, lower, f), AxisPoint(dir, upper, f)}
	}
	return segs
}

// tickEnd returns the end of a tick of the given length starting at
// the fixed position p, pointing into the box.
func tickEnd(p, length float64) float64 {
	if p < 0.5 {
		return p + length
	}
	return p - length
}

// TickMarks returns the tick geometry for ticks at the logical
// positions fracs on each face, face by face.
func TickMarks(dir Dims, fracs []float64, length float64, faces []Face) []TickMark {
	marks := make([]TickMark, 0, len(fracs)*len(faces))
	for fi, f := range faces {
		e1 := Face{tickEnd(f.P1, length), f.P2}
		e2 := Face{f.P1, tickEnd(f.P2, length)}
		for _, t := range fracs {
			marks = append(marks, TickMark{
				FaceIndex: fi,
				Frac:      t,
				OnAxis:    AxisPoint(dir, t, f),
				End1:      AxisPoint(dir, t, e1),
				End2:      AxisPoint(dir, t, e2),
				Along:     AxisPoint(dir, t+alongOffset, f),
			})
		}
	}
	return marks
}

// TickSegments returns the line segments to draw for the tick marks.
// For each face, the ticks in the first perpendicular direction come
// first, followed by those in the second.
func TickSegments(marks []TickMark) []Segment {
	segs := make([]Segment, 0, 2*len(marks))
	for start := 0; start < len(marks); {
		end := start
		for end < len(marks) && marks[end].FaceIndex == marks[start].FaceIndex {
			end++
		}
		for _, m := range marks[start:end] {
			segs = append(segs, Segment{m.OnAxis, m.End1})
		}
		for _, m := range marks[start:end] {
			segs = append(segs, Segment{m.OnAxis, m.End2})
		}
		start = end
	}
	return segs
}

// SegmentPoints flattens segments into coordinate lists of start
// and end points, x, y, z for each, as renderers consume them.
func SegmentPoints(segs []Segment) (starts, ends []float64) {
	starts = make([]float64, 3*len(segs))
	ends = make([]float64, 3*len(segs))
	for i, s := range segs {
		s.Start.ToArray(starts, 3*i)
		s.End.ToArray(ends, 3*i)
	}
	return
}
