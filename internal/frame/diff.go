package frame

import (
	"fmt"

	"gocv.io/x/gocv"
)

// DiffScore returns the mean absolute luminance difference between two
// frames, scaled to [0,100]. 0 means identical, 100 means every pixel
// moved through the full intensity range.
func DiffScore(a, b *Frame) (float64, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() || a.Channels() != b.Channels() {
		return 0, fmt.Errorf("frame shapes differ: %dx%dx%d vs %dx%dx%d",
			a.Width(), a.Height(), a.Channels(), b.Width(), b.Height(), b.Channels())
	}

	grayA, err := a.Gray()
	if err != nil {
		return 0, err
	}
	defer grayA.Close()

	grayB, err := b.Gray()
	if err != nil {
		return 0, err
	}
	defer grayB.Close()

	diff := gocv.NewMat()
	defer diff.Close()

	gocv.AbsDiff(*grayA.mat, *grayB.mat, &diff)

	return diff.Mean().Val1 * 100.0 / 255.0, nil
}
