package stats

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/services/checkin"
	"Backend-EventEase/src/store"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, st *store.MemoryStore, n int) []models.Participant {
	t.Helper()
	var out []models.Participant
	for i := 0; i < n; i++ {
		p, err := st.InsertParticipant(context.Background(), models.Participant{
			Name:      fmt.Sprintf("Participant %d", i),
			Email:     fmt.Sprintf("p%d@example.com", i),
			CollegeID: fmt.Sprintf("CS%03d", i),
			College:   "Demo University",
			Phone:     "+6612345678",
		})
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("TestEmptyStoreSnapshot", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		snapshot, err := svc.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, snapshot.TotalRegistrations)
		assert.Equal(t, 0, snapshot.TotalCheckedIn)
		assert.Empty(t, snapshot.RecentCheckIns)
		assert.NotNil(t, snapshot.RecentCheckIns) // serialize เป็น [] ไม่ใช่ null
	})

	t.Run("TestSnapshotAfterCheckIn", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewService(st)
		ci := checkin.NewService(st)

		ps := register(t, st, 3)
		_, err := ci.CheckIn(ctx, ps[0].ID, "V1")
		require.NoError(t, err)

		snapshot, err := svc.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, snapshot.TotalRegistrations)
		assert.Equal(t, 1, snapshot.TotalCheckedIn)
		require.Len(t, snapshot.RecentCheckIns, 1)
		assert.Equal(t, ps[0].ID, snapshot.RecentCheckIns[0].ParticipantID)
	})

	t.Run("TestCheckedInNeverExceedsRegistrations", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewService(st)
		ci := checkin.NewService(st)

		ps := register(t, st, 4)
		for _, p := range ps {
			_, err := ci.CheckIn(ctx, p.ID, "V1")
			require.NoError(t, err)
		}
		// เช็คเอาท์แล้วเช็คอินซ้ำหลายรอบ
		for i := 0; i < 3; i++ {
			_, err := ci.CheckOut(ctx, ps[0].ID, "V1")
			require.NoError(t, err)
			_, err = ci.CheckIn(ctx, ps[0].ID, "V2")
			require.NoError(t, err)
		}

		snapshot, err := svc.Snapshot(ctx)
		require.NoError(t, err)
		assert.LessOrEqual(t, snapshot.TotalCheckedIn, snapshot.TotalRegistrations)
		assert.Equal(t, 4, snapshot.TotalCheckedIn)
	})

	t.Run("TestCheckOutReducesCheckedIn", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewService(st)
		ci := checkin.NewService(st)

		ps := register(t, st, 2)
		_, err := ci.CheckIn(ctx, ps[0].ID, "V1")
		require.NoError(t, err)
		_, err = ci.CheckIn(ctx, ps[1].ID, "V1")
		require.NoError(t, err)
		_, err = ci.CheckOut(ctx, ps[0].ID, "V1")
		require.NoError(t, err)

		snapshot, err := svc.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, snapshot.TotalCheckedIn) // สถานะล่าสุดของ ps[0] คือ check-out
	})
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("TestInitialSnapshotOnEmptyStore", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		var got []models.DashboardStats
		unsubscribe, err := svc.Subscribe(func(s models.DashboardStats) { got = append(got, s) })
		require.NoError(t, err)
		defer unsubscribe()

		require.NotEmpty(t, got)
		last := got[len(got)-1]
		assert.Equal(t, 0, last.TotalRegistrations)
		assert.Equal(t, 0, last.TotalCheckedIn)
		assert.Empty(t, last.RecentCheckIns)
	})

	t.Run("TestPushOnRegistrationAndCheckIn", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewService(st)
		ci := checkin.NewService(st)

		var got []models.DashboardStats
		unsubscribe, err := svc.Subscribe(func(s models.DashboardStats) { got = append(got, s) })
		require.NoError(t, err)
		defer unsubscribe()

		ps := register(t, st, 1)
		_, err = ci.CheckIn(ctx, ps[0].ID, "V1")
		require.NoError(t, err)

		last := got[len(got)-1]
		assert.Equal(t, 1, last.TotalRegistrations)
		assert.Equal(t, 1, last.TotalCheckedIn)
		require.Len(t, last.RecentCheckIns, 1)
	})

	t.Run("TestRecentCheckInsOrderedAndBounded", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewService(st)
		ci := checkin.NewService(st)

		ps := register(t, st, store.RecentCheckInsLimit+3)

		var last models.DashboardStats
		unsubscribe, err := svc.Subscribe(func(s models.DashboardStats) { last = s })
		require.NoError(t, err)
		defer unsubscribe()

		for _, p := range ps {
			_, err := ci.CheckIn(ctx, p.ID, "V1")
			require.NoError(t, err)
		}

		require.Len(t, last.RecentCheckIns, store.RecentCheckInsLimit)
		// เรียงตาม at จากใหม่ไปเก่า
		for i := 1; i < len(last.RecentCheckIns); i++ {
			assert.False(t, last.RecentCheckIns[i-1].At.Before(last.RecentCheckIns[i].At))
		}
		// รายการล่าสุดคือคนสุดท้ายที่เช็คอิน
		assert.Equal(t, ps[len(ps)-1].ID, last.RecentCheckIns[0].ParticipantID)
	})

	t.Run("TestUnsubscribeStopsDelivery", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewService(st)

		calls := 0
		unsubscribe, err := svc.Subscribe(func(models.DashboardStats) { calls++ })
		require.NoError(t, err)
		before := calls

		unsubscribe()
		unsubscribe() // idempotent

		register(t, st, 1)
		assert.Equal(t, before, calls)
	})

	t.Run("TestResubscribeStartsFreshLifecycle", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewService(st)

		unsubscribe, err := svc.Subscribe(func(models.DashboardStats) {})
		require.NoError(t, err)
		unsubscribe()

		register(t, st, 2)

		var got []models.DashboardStats
		unsubscribe, err = svc.Subscribe(func(s models.DashboardStats) { got = append(got, s) })
		require.NoError(t, err)
		defer unsubscribe()

		require.NotEmpty(t, got)
		assert.Equal(t, 2, got[len(got)-1].TotalRegistrations)
	})

	t.Run("TestNoDeliveryAfterUnsubscribeReturns", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewService(st)

		var unsubscribed atomic.Bool
		unsubscribe, err := svc.Subscribe(func(models.DashboardStats) {
			assert.False(t, unsubscribed.Load(), "delivery landed after unsubscribe returned")
		})
		require.NoError(t, err)

		// เขียนถี่ๆ ขนานไปกับ unsubscribe
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = st.InsertParticipant(ctx, models.Participant{
					Name:      fmt.Sprintf("Writer %d", i),
					Email:     fmt.Sprintf("w%d@example.com", i),
					CollegeID: fmt.Sprintf("W%03d", i),
					College:   "Demo University",
					Phone:     "+6612345678",
				})
			}
		}()

		unsubscribe()
		unsubscribed.Store(true)
		wg.Wait()
	})

	t.Run("TestSubscribeFailsWhenFeedUnavailable", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := NewService(&eventFeedDownStore{MemoryStore: st})

		calls := 0
		unsubscribe, err := svc.Subscribe(func(models.DashboardStats) { calls++ })
		assert.Nil(t, unsubscribe)
		assert.ErrorIs(t, err, store.ErrUnavailable)

		// feed ที่เปิดไปแล้วต้องถูกปล่อย write หลังจากนี้ห้ามถึง listener
		before := calls
		register(t, st, 1)
		assert.Equal(t, before, calls)
	})
}

// eventFeedDownStore จำลอง store ที่อ่าน snapshot แรกของ check events ไม่ได้
type eventFeedDownStore struct {
	*store.MemoryStore
}

func (s *eventFeedDownStore) SubscribeCheckEvents(func([]models.CheckEvent)) (func(), error) {
	return nil, store.ErrUnavailable
}
