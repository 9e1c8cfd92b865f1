package keyboard

import "strconv"

// walkState replaces a bare "flat" flag: after a white key whose degree has a
// black key below it, the walker emits that black key next.
type walkState int

const (
	emitWhite walkState = iota
	emitBlackNext
)

const numDegrees = 7

var degreeNames = [numDegrees]string{"c", "d", "e", "f", "g", "a", "b"}

// semitones above c for each natural degree.
var degreeSemitones = [numDegrees]int{0, 2, 4, 5, 7, 9, 11}

// blackBelow marks degrees with a black key one semitone below them.
// c and f have none: b-c and e-f are half steps.
var blackBelow = [numDegrees]bool{false, true, true, false, true, true, true}

// pitch is one position produced by the chromatic walk.
type pitch struct {
	degree int
	octave int
	color  Color
}

func (p pitch) name() string {
	if p.color == Black {
		return degreeNames[p.degree] + "b" + strconv.Itoa(p.octave)
	}
	return degreeNames[p.degree] + strconv.Itoa(p.octave)
}

func (p pitch) midi() int {
	n := 12*(p.octave+1) + degreeSemitones[p.degree]
	if p.color == Black {
		n--
	}
	return n
}

// walk enumerates n chromatic positions downwards, starting at c in
// topOctave. It stops after exactly n positions regardless of where the
// octave pattern is.
func walk(n, topOctave int) []pitch {
	pitches := make([]pitch, 0, n)
	degree, octave, state := 0, topOctave, emitWhite

	for len(pitches) < n {
		switch state {
		case emitWhite:
			pitches = append(pitches, pitch{degree: degree, octave: octave, color: White})
			if blackBelow[degree] {
				state = emitBlackNext
				continue
			}
		case emitBlackNext:
			pitches = append(pitches, pitch{degree: degree, octave: octave, color: Black})
			state = emitWhite
		}

		degree--
		if degree < 0 {
			degree = numDegrees - 1
			octave--
		}
	}
	return pitches
}
