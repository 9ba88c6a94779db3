package indicators

import (
	"math"
	"testing"

	"tradescan/internal/contracts"
)

func linearCloses(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func TestReturn(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		window int
		want   float64
	}{
		{"20 percent gain", []float64{10, 11, 12}, 2, 0.2},
		{"flat", []float64{50, 50, 50, 50}, 3, 0},
		{"decline", []float64{100, 90}, 1, -0.1},
		{"insufficient history", []float64{10, 11}, 5, 0},
		{"zero past price", []float64{0, 10}, 1, 0},
		{"negative past price", []float64{-5, 10}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Return(tt.closes, tt.window)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Return = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAcceleration(t *testing.T) {
	// Steady 1%/bar trend: short return matches the pro-rated long return,
	// so acceleration is near zero.
	steady := make([]float64, 61)
	steady[0] = 100
	for i := 1; i < len(steady); i++ {
		steady[i] = steady[i-1] * 1.01
	}
	if a := Acceleration(steady, 5, 60); math.Abs(a) > 0.05 {
		t.Errorf("steady trend acceleration = %v, want near 0", a)
	}

	// Flat for 55 bars then a sharp 5-bar ramp: clearly positive.
	burst := make([]float64, 61)
	for i := 0; i < 56; i++ {
		burst[i] = 100
	}
	for i := 56; i < 61; i++ {
		burst[i] = burst[i-1] * 1.03
	}
	if a := Acceleration(burst, 5, 60); a <= 0 {
		t.Errorf("late burst acceleration = %v, want > 0", a)
	}
}

func TestRSI(t *testing.T) {
	t.Run("monotonic rise is overbought", func(t *testing.T) {
		got := RSI(linearCloses(100, 1, 30), 14)
		if got <= 70 {
			t.Errorf("RSI on straight rise = %v, want > 70", got)
		}
		if got > 100 {
			t.Errorf("RSI = %v, out of range", got)
		}
	})

	t.Run("monotonic fall is oversold", func(t *testing.T) {
		got := RSI(linearCloses(100, -1, 30), 14)
		if got >= 30 {
			t.Errorf("RSI on straight fall = %v, want < 30", got)
		}
		if got < 0 {
			t.Errorf("RSI = %v, out of range", got)
		}
	})

	t.Run("short series is exactly 50", func(t *testing.T) {
		if got := RSI(linearCloses(100, 1, 14), 14); got != 50 {
			t.Errorf("RSI with period bars = %v, want 50", got)
		}
		if got := RSI(nil, 14); got != 50 {
			t.Errorf("RSI on empty series = %v, want 50", got)
		}
	})

	t.Run("flat series is 50", func(t *testing.T) {
		if got := RSI(linearCloses(42, 0, 30), 14); got != 50 {
			t.Errorf("RSI on flat series = %v, want 50", got)
		}
	})
}

func TestSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	if got := SMA(closes, 3); got != 4 {
		t.Errorf("SMA(3) = %v, want 4", got)
	}
	if got := SMA(closes, 10); got != 0 {
		t.Errorf("SMA short input = %v, want 0", got)
	}
}

func TestEMA(t *testing.T) {
	if got := EMA(linearCloses(50, 0, 30), 10); got != 50 {
		t.Errorf("flat series EMA = %v, want 50", got)
	}
	if got := EMA([]float64{1, 2, 3}, 10); got != 0 {
		t.Errorf("EMA short input = %v, want 0", got)
	}

	// On a steadily rising series the EMA trails the last close by roughly
	// (n-1)/2 steps once the smoothing settles.
	closes := linearCloses(100, 1, 40)
	ema := EMA(closes, 10)
	last := closes[len(closes)-1]
	if ema >= last || ema < last-6 {
		t.Errorf("EMA = %v, want a little below last close %v", ema, last)
	}
}

func TestBreakout(t *testing.T) {
	// 20 bars capped at 100, then a close above the band.
	base := linearCloses(90, 0.5, 20) // prior high 99.5
	tests := []struct {
		name      string
		lastClose float64
		threshold float64
		want      bool
	}{
		{"clears high plus threshold", 101.0, 0.01, true},
		{"above high but inside threshold", 100.0, 0.01, false},
		{"below high", 95.0, 0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closes := append(append([]float64{}, base...), tt.lastClose)
			if got := Breakout(closes, 20, tt.threshold); got != tt.want {
				t.Errorf("Breakout = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("insufficient history is never a breakout", func(t *testing.T) {
		if Breakout([]float64{10, 20}, 20, 0.01) {
			t.Error("breakout on 2 bars")
		}
	})
}

func TestRealizedVol(t *testing.T) {
	if got := RealizedVol(linearCloses(50, 0, 30), 20); got != 0 {
		t.Errorf("flat series vol = %v, want 0", got)
	}

	// Alternating +10% / -10% should produce stdev near 0.10.
	closes := make([]float64, 30)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		if i%2 == 1 {
			closes[i] = closes[i-1] * 1.10
		} else {
			closes[i] = closes[i-1] * 0.90
		}
	}
	got := RealizedVol(closes, 20)
	if got < 0.08 || got > 0.12 {
		t.Errorf("alternating vol = %v, want around 0.10", got)
	}

	if got := RealizedVol(linearCloses(100, 1, 5), 20); got != 0 {
		t.Errorf("short input vol = %v, want 0", got)
	}
}

func TestATR(t *testing.T) {
	bars := make([]contracts.Bar, 20)
	for i := range bars {
		c := 100.0
		bars[i] = contracts.Bar{Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000}
	}
	got := ATR(bars, 14)
	if math.Abs(got-2.0) > 1e-9 {
		t.Errorf("constant-range ATR = %v, want 2.0", got)
	}

	if got := ATR(bars[:5], 14); got != 0 {
		t.Errorf("short input ATR = %v, want 0", got)
	}
}

func TestVolume(t *testing.T) {
	bars := make([]contracts.Bar, 41)
	for i := range bars {
		bars[i] = contracts.Bar{Close: 10, Volume: 1000}
	}
	bars[len(bars)-1].Volume = 3000

	if got := VolumeRatio(bars, 20); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("VolumeRatio = %v, want 3.0", got)
	}
	if got := AvgVolume(bars[:40], 20); got != 1000 {
		t.Errorf("AvgVolume = %v, want 1000", got)
	}
	if got := AvgDollarVolume(bars[:40], 20); got != 10000 {
		t.Errorf("AvgDollarVolume = %v, want 10000", got)
	}

	// Recent half doubled: trend = +1.0.
	trending := make([]contracts.Bar, 40)
	for i := range trending {
		v := 1000.0
		if i >= 20 {
			v = 2000
		}
		trending[i] = contracts.Bar{Close: 10, Volume: v}
	}
	if got := VolumeTrend(trending, 20); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("VolumeTrend = %v, want 1.0", got)
	}
}

func TestRelativeStrength(t *testing.T) {
	symbol := []float64{100, 120}  // +20%
	bench := []float64{400, 420}   // +5%
	got := RelativeStrength(symbol, bench, 1)
	if math.Abs(got-0.15) > 1e-9 {
		t.Errorf("RelativeStrength = %v, want 0.15", got)
	}
}
