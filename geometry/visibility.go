// ABOUTME: Partial visibility of a subject rect through a frame rect
// ABOUTME: Used to cull off-screen items from displacement and keyboard targeting

package geometry

func isWithin(lower, upper float64) func(float64) bool {
	return func(v float64) bool {
		return lower <= v && v <= upper
	}
}

// IsWithin reports whether v lies in [lower, upper]
func IsWithin(lower, upper, v float64) bool {
	return isWithin(lower, upper)(v)
}

// IsPartiallyVisibleThroughFrame reports whether any part of subject can be seen through frame.
// A subject larger than the frame on an axis counts as visible when it covers the frame there.
func IsPartiallyVisibleThroughFrame(frame, subject Rect) bool {
	withinVertical := isWithin(frame.Top, frame.Bottom)
	withinHorizontal := isWithin(frame.Left, frame.Right)

	partialVertical := withinVertical(subject.Top) || withinVertical(subject.Bottom)
	partialHorizontal := withinHorizontal(subject.Left) || withinHorizontal(subject.Right)

	if partialVertical && partialHorizontal {
		return true
	}

	biggerVertical := subject.Top < frame.Top && subject.Bottom > frame.Bottom
	biggerHorizontal := subject.Left < frame.Left && subject.Right > frame.Right

	if biggerVertical && biggerHorizontal {
		return true
	}

	return (biggerVertical && partialHorizontal) || (biggerHorizontal && partialVertical)
}
