package indicators

import "tradescan/internal/contracts"

// AvgVolume is the mean share volume of the last n bars. Needs n bars;
// returns 0 on short input.
func AvgVolume(bars []contracts.Bar, n int) float64 {
	if n <= 0 || len(bars) < n {
		return 0
	}

	var sum float64
	for _, b := range bars[len(bars)-n:] {
		sum += b.Volume
	}
	return sum / float64(n)
}

// AvgDollarVolume is the mean of close*volume over the last n bars, a proxy
// for how much capital the symbol absorbs per session.
func AvgDollarVolume(bars []contracts.Bar, n int) float64 {
	if n <= 0 || len(bars) < n {
		return 0
	}

	var sum float64
	for _, b := range bars[len(bars)-n:] {
		sum += b.Close * b.Volume
	}
	return sum / float64(n)
}

// VolumeRatio compares the latest bar's volume to the average of the n bars
// before it. 1.0 means in line with recent activity; returns 0 when there is
// no prior baseline.
func VolumeRatio(bars []contracts.Bar, n int) float64 {
	if n <= 0 || len(bars) < n+1 {
		return 0
	}

	baseline := AvgVolume(bars[:len(bars)-1], n)
	if baseline <= 0 {
		return 0
	}
	return bars[len(bars)-1].Volume / baseline
}

// VolumeTrend is the fractional change of average volume between the most
// recent n bars and the n bars before those. Positive means activity is
// building. Needs 2n bars; returns 0 on short input.
func VolumeTrend(bars []contracts.Bar, n int) float64 {
	if n <= 0 || len(bars) < 2*n {
		return 0
	}

	recent := AvgVolume(bars, n)
	prior := AvgVolume(bars[:len(bars)-n], n)
	if prior <= 0 {
		return 0
	}
	return (recent - prior) / prior
}
