package sweep

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lgsim/core/polymer"
	"lgsim/core/randsrc"
	"lgsim/core/stats"
)

func TestRun_SingleLengthReferenceTrials(t *testing.T) {
	r := Runner{
		Gen:    polymer.Config{GProb: 0.25},
		Sweep:  Config{Start: 40, End: 40, Step: 8, Trials: 10000, Threads: 1},
		Source: randsrc.New(1),
	}
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Points, 1)
	for name, s := range map[string][]float64{
		"l_mean": res.LRunMeans(), "l_sem": res.LRunSEMs(),
		"g_mean": res.GRunMeans(), "g_sem": res.GRunSEMs(),
	} {
		require.Len(t, s, 1, name)
		assert.False(t, math.IsNaN(s[0]) || math.IsInf(s[0], 0), "%s not finite: %v", name, s[0])
	}
	assert.Equal(t, []int{40}, res.Lengths())
	assert.Equal(t, uint64(1), res.Seed)
	// L-runs dominate at p=0.25: mean LL/LG+1 is well above 1.
	assert.Greater(t, res.Points[0].LRun.Mean, 2.0)
	assert.Equal(t, 10000, res.Points[0].LRun.N)
}

func TestRun_DeterministicAcrossThreads(t *testing.T) {
	run := func(threads int) Result {
		r := Runner{
			Gen:    polymer.Config{GProb: 0.3, Fixed: true},
			Sweep:  Config{Start: 10, End: 90, Step: 16, Trials: 200, Threads: threads},
			Source: randsrc.New(77),
		}
		res, err := r.Run(context.Background())
		require.NoError(t, err)
		return res
	}
	serial := run(1)
	parallel := run(4)
	assert.Equal(t, serial.Points, parallel.Points)
	assert.Equal(t, []int{10, 26, 42, 58, 74, 90}, parallel.Lengths())
}

func TestRun_SingleTrialIsDomainError(t *testing.T) {
	r := Runner{
		Gen:    polymer.Config{GProb: 0.25},
		Sweep:  Config{Start: 40, End: 48, Step: 8, Trials: 1, Threads: 2},
		Source: randsrc.New(3),
	}
	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, stats.ErrDomain)
}

func TestRun_InvalidConfig(t *testing.T) {
	for _, c := range []Config{
		{Start: 40, End: 48, Step: 0, Trials: 10},
		{Start: -1, End: 48, Step: 8, Trials: 10},
		{Start: 50, End: 48, Step: 8, Trials: 10},
		{Start: 40, End: 48, Step: 8, Trials: 0},
	} {
		r := Runner{Gen: polymer.Config{GProb: 0.25}, Sweep: c}
		_, err := r.Run(context.Background())
		assert.ErrorIs(t, err, ErrInvalidConfig, "%+v", c)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := Runner{
		Gen:    polymer.Config{GProb: 0.25},
		Sweep:  Config{Start: 40, End: 400, Step: 8, Trials: 1000, Threads: 2},
		Source: randsrc.New(5),
	}
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsEachLength(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r := Runner{
		Gen:    polymer.Config{GProb: 0.25, Dimers: true},
		Sweep:  Config{Start: 20, End: 36, Step: 8, Trials: 50, Threads: 1},
		Source: randsrc.New(9),
		Log:    logger,
	}
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	var perLength int
	for _, e := range hook.AllEntries() {
		if e.Message == "length done" {
			perLength++
			assert.Contains(t, e.Data, "length")
		}
	}
	assert.Equal(t, 3, perLength)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "sweep complete", hook.LastEntry().Message)
}

func TestRunBatch_VisitSeesEveryTrial(t *testing.T) {
	gen := polymer.NewGenerator(polymer.Config{GProb: 0.5}, randsrc.New(2).Stream(0))
	var seen int
	b, err := RunBatch(context.Background(), gen, 12, 25, func(i int, p polymer.Polymer) error {
		assert.Equal(t, seen, i)
		assert.Len(t, p, 12)
		seen++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 25, seen)
	for i := range b.GG {
		assert.Equal(t, 11, b.GG[i]+b.LL[i]+b.GL[i]+b.LG[i])
	}
}

func TestConfig_Lengths(t *testing.T) {
	assert.Equal(t, []int{40}, Config{Start: 40, End: 40, Step: 8}.Lengths())
	assert.Equal(t, []int{40, 48}, Config{Start: 40, End: 55, Step: 8}.Lengths())
	assert.Len(t, Default().Lengths(), 371)
	assert.Nil(t, Config{Start: 4, End: 2, Step: 1}.Lengths())
}

func TestConfig_HugeRangesRejected(t *testing.T) {
	for _, c := range []Config{
		{Start: 0, End: math.MaxInt, Step: math.MaxInt/2 + 1, Trials: 10},
		{Start: 40, End: math.MaxInt, Step: 8, Trials: 10},
		{Start: 0, End: MaxLength, Step: 1, Trials: 10},
	} {
		assert.ErrorIs(t, c.Validate(), ErrInvalidConfig, "%+v", c)
		done := make(chan []int, 1)
		go func() { done <- c.Lengths() }()
		select {
		case got := <-done:
			assert.Nil(t, got, "%+v", c)
		case <-time.After(3 * time.Second):
			t.Fatalf("Lengths() did not return for %+v", c)
		}
	}
}

func TestConfig_LengthsNearBoundsDoNotWrap(t *testing.T) {
	c := Config{Start: MaxLength - 10, End: MaxLength, Step: 4, Trials: 2}
	require.NoError(t, c.Validate())
	assert.Equal(t, []int{MaxLength - 10, MaxLength - 6, MaxLength - 2}, c.Lengths())

	c = Config{Start: 0, End: MaxLength, Step: MaxLength, Trials: 2}
	require.NoError(t, c.Validate())
	assert.Equal(t, []int{0, MaxLength}, c.Lengths())
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "", Suffix(polymer.Config{}))
	assert.Equal(t, "_f", Suffix(polymer.Config{Fixed: true}))
	assert.Equal(t, "_d", Suffix(polymer.Config{Dimers: true}))
	assert.Equal(t, "_f_d", Result{Gen: polymer.Config{Fixed: true, Dimers: true}}.Suffix())
}
