package scrub_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/transit/internal/core/ports/mocks"
	"go.trai.ch/transit/internal/engine/cache"
	"go.trai.ch/transit/internal/engine/scrub"
	"go.uber.org/mock/gomock"
)

func positionsFor(date time.Time) domain.PositionSet {
	return domain.NewPositionSet(date, []domain.Position{
		{Body: domain.Sun, Longitude: float64(date.Month()) * 10},
	})
}

func TestPrefetcher_WarmsMissingNeighbors(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	client := mocks.NewMockEphemeris(mockCtrl)
	keyer := testKeyer(t)
	store := cache.NewPositionStore(domain.DefaultCacheCapacity)

	center := keyer.PeriodStart(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))

	// The center itself is never fetched; every neighbor within the radius is.
	for _, off := range []int{-2, -1, 1, 2} {
		date := keyer.AddPeriods(center, off)
		client.EXPECT().
			FetchPositions(gomock.Any(), date, testProfile()).
			Return(positionsFor(date), nil)
	}

	p := scrub.NewPrefetcher(client, store, nil, 2)
	p.Warm(context.Background(), keyer, center, testProfile())

	assert.Equal(t, 4, store.Len())
	for _, off := range []int{-2, -1, 1, 2} {
		date := keyer.AddPeriods(center, off)
		got, ok := store.Cached(keyer.Key(date))
		require.True(t, ok, "offset %d", off)
		assert.Equal(t, positionsFor(date), got)
	}
}

func TestPrefetcher_SkipsCachedKeys(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	client := mocks.NewMockEphemeris(mockCtrl)
	keyer := testKeyer(t)
	store := cache.NewPositionStore(domain.DefaultCacheCapacity)

	center := keyer.PeriodStart(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))
	prev := keyer.AddPeriods(center, -1)
	next := keyer.AddPeriods(center, 1)
	store.Store(keyer.Key(prev), positionsFor(prev))

	// Only the missing neighbor is fetched.
	client.EXPECT().
		FetchPositions(gomock.Any(), next, testProfile()).
		Return(positionsFor(next), nil)

	p := scrub.NewPrefetcher(client, store, nil, 1)
	p.Warm(context.Background(), keyer, center, testProfile())

	// A second warm over the same window is a no-op: everything is cached.
	p.Warm(context.Background(), keyer, center, testProfile())

	assert.Equal(t, 2, store.Len())
}

func TestPrefetcher_FailuresAreIsolated(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	client := mocks.NewMockEphemeris(mockCtrl)
	keyer := testKeyer(t)
	store := cache.NewPositionStore(domain.DefaultCacheCapacity)

	log := mocks.NewMockLogger(mockCtrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	center := keyer.PeriodStart(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))
	for _, off := range []int{-1, 1} {
		date := keyer.AddPeriods(center, off)
		if off == -1 {
			client.EXPECT().
				FetchPositions(gomock.Any(), date, testProfile()).
				Return(domain.PositionSet{}, domain.ErrEphemerisUnavailable)
			continue
		}
		client.EXPECT().
			FetchPositions(gomock.Any(), date, testProfile()).
			Return(positionsFor(date), nil)
	}

	p := scrub.NewPrefetcher(client, store, log, 1)
	p.Warm(context.Background(), keyer, center, testProfile())

	// The failed neighbor is simply absent; the other landed.
	assert.Equal(t, 1, store.Len())
	_, ok := store.Cached(keyer.Key(keyer.AddPeriods(center, 1)))
	assert.True(t, ok)
}

func TestPrefetcher_DoesNotOverwriteConcurrentResult(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		client := mocks.NewMockEphemeris(mockCtrl)
		keyer := testKeyer(t)
		store := cache.NewPositionStore(domain.DefaultCacheCapacity)

		center := keyer.PeriodStart(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))
		next := keyer.AddPeriods(center, 1)
		committed := domain.NewPositionSet(next, []domain.Position{
			{Body: domain.Sun, Longitude: 77},
		})

		// The prefetch fetch is slow; a real fetch stores its result for the
		// same key while the prefetch is in flight. The stored result wins.
		client.EXPECT().
			FetchPositions(gomock.Any(), next, testProfile()).
			DoAndReturn(func(context.Context, time.Time, domain.Profile) (domain.PositionSet, error) {
				time.Sleep(100 * time.Millisecond)
				return positionsFor(next), nil
			})

		p := scrub.NewPrefetcher(client, store, nil, 1)
		done := make(chan struct{})
		go func() {
			defer close(done)
			p.Warm(context.Background(), keyer, center, testProfile())
		}()

		time.Sleep(50 * time.Millisecond)
		store.Store(keyer.Key(next), committed)

		<-done
		got, ok := store.Cached(keyer.Key(next))
		require.True(t, ok)
		assert.Equal(t, committed, got)
	})
}

func TestController_CommitWarmsNeighbors(t *testing.T) {
	// A successful bootstrap kicks off prefetching around the committed
	// period: positions for M-1 and M+1 land in the position tier without
	// any further interaction.
	synctest.Test(t, func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		client := mocks.NewMockEphemeris(mockCtrl)
		keyer := testKeyer(t)

		now := time.Date(2026, time.August, 14, 9, 0, 0, 0, time.UTC)
		month := keyer.PeriodStart(now)
		client.EXPECT().
			FetchSnapshot(gomock.Any(), month, testProfile()).
			Return(snapFor(month), nil)
		for _, off := range []int{-1, 1} {
			date := keyer.AddPeriods(month, off)
			client.EXPECT().
				FetchPositions(gomock.Any(), date, testProfile()).
				Return(positionsFor(date), nil)
		}

		positions := cache.NewPositionStore(domain.DefaultCacheCapacity)
		snapshots := cache.NewSnapshotStore(domain.DefaultCacheCapacity)
		log := quietLogger(mockCtrl)
		prefetch := scrub.NewPrefetcher(client, positions, log, 1)
		ctrl, err := scrub.NewController(client, log, positions, snapshots, prefetch, testProfile(), debounceWindow)
		require.NoError(t, err)
		defer ctrl.Close()

		require.NoError(t, ctrl.Bootstrap(context.Background(), now))
		synctest.Wait()

		// Committed month plus two warmed neighbors.
		assert.Equal(t, 3, positions.Len())
		_, ok := positions.Cached(keyer.Key(keyer.AddPeriods(month, -1)))
		assert.True(t, ok)
		_, ok = positions.Cached(keyer.Key(keyer.AddPeriods(month, 1)))
		assert.True(t, ok)
	})
}
