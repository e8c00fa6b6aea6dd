// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/mock"
	"github.com/MKhiriev/go-list-keeper/models"
)

// responses собирает ответы колбэков.
type responses struct {
	mu  sync.Mutex
	got []models.DeviceResponse
}

func (r *responses) cb(resp models.DeviceResponse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, resp)
}

func (r *responses) all() []models.DeviceResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.DeviceResponse(nil), r.got...)
}

func newTestDeviceService(t *testing.T, ctrl *gomock.Controller, poll time.Duration) (*deviceService, *mock.MockDeviceTransport, *testClock, PreferencesService) {
	t.Helper()
	transport := mock.NewMockDeviceTransport(ctrl)
	prefs := newTestPreferences(t)
	clock := newTestClock()

	svc := NewDeviceService(transport, prefs, 0, poll, logger.Nop()).(*deviceService)
	svc.now = clock.Now
	t.Cleanup(svc.Stop)
	return svc, transport, clock, prefs
}

var groceriesPayload = json.RawMessage(`["t=Groceries","n=0"]`)

// ── Dispatch ────────────────────────────────────────────────────────────────

func TestDeviceService_Dispatch_SendsEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, _, _ := newTestDeviceService(t, ctrl, time.Hour)

	var sent models.DeviceEnvelope
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, env models.DeviceEnvelope) error {
			sent = env
			return nil
		})

	tid, err := svc.Dispatch(context.Background(), "watch-1", groceriesPayload, time.Second, func(models.DeviceResponse) {})
	require.NoError(t, err)

	assert.NotZero(t, tid)
	assert.LessOrEqual(t, tid, uint64(MaxTransactionID))
	require.NotNil(t, sent.TransactionID)
	assert.Equal(t, tid, *sent.TransactionID)
	assert.Equal(t, "watch-1", sent.DeviceID)
	assert.JSONEq(t, string(groceriesPayload), string(sent.Payload))
	assert.Equal(t, []uint64{tid}, svc.Outstanding())
}

func TestDeviceService_Dispatch_TimeoutResolvesNoResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, clock, _ := newTestDeviceService(t, ctrl, 5*time.Millisecond)
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	got := &responses{}
	tid, err := svc.Dispatch(context.Background(), "watch-1", groceriesPayload, time.Second, got.cb)
	require.NoError(t, err)

	// до истечения таймаута колбэк не вызывается
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, got.all())

	clock.Advance(1500 * time.Millisecond)

	require.Eventually(t, func() bool { return len(got.all()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, models.DeviceResponse{TransactionID: tid, DeviceID: "watch-1", Status: models.DeviceNoResponse}, got.all()[0])
	assert.Empty(t, svc.Outstanding())

	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return svc.pollCancel == nil
	}, time.Second, 5*time.Millisecond, "poll stops when nothing is outstanding")
}

func TestDeviceService_Dispatch_DefaultTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	tid, err := svc.Dispatch(context.Background(), "watch-1", groceriesPayload, 0, func(models.DeviceResponse) {})
	require.NoError(t, err)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	assert.Equal(t, defaultDeviceTimeout, svc.outstanding[tid].timeout)
}

func TestDeviceService_Dispatch_SendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("bridge down"))

	got := &responses{}
	tid, err := svc.Dispatch(context.Background(), "watch-1", groceriesPayload, time.Second, got.cb)

	require.ErrorIs(t, err, ErrDeviceSend)
	assert.Zero(t, tid)
	assert.Empty(t, svc.Outstanding())
	assert.Empty(t, got.all(), "callback is not invoked for a failed send")
}

func TestDeviceService_Dispatch_NotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	ctx := context.Background()
	svc.HandleEvent(ctx, models.DeviceEvent{DeviceID: "watch-1", State: models.DeviceNotConnected})

	got := &responses{}
	tid, err := svc.Dispatch(ctx, "watch-1", groceriesPayload, time.Second, got.cb)

	require.NoError(t, err)
	assert.Zero(t, tid)
	require.Len(t, got.all(), 1)
	assert.Equal(t, models.DeviceNotReady, got.all()[0].Status)
	assert.Empty(t, svc.Outstanding())
}

func TestDeviceService_Dispatch_CollisionIsRedrawn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	draws := []uint64{0, 42, 42, 1<<63 | 42, 7}
	svc.random = func() uint64 {
		v := draws[0]
		draws = draws[1:]
		return v
	}

	first, err := svc.Dispatch(context.Background(), "watch-1", groceriesPayload, time.Second, func(models.DeviceResponse) {})
	require.NoError(t, err)
	second, err := svc.Dispatch(context.Background(), "watch-1", groceriesPayload, time.Second, func(models.DeviceResponse) {})
	require.NoError(t, err)

	// 0 отбрасывается, 42 уже занят, старшие биты маскируются до 42, тоже занят
	assert.Equal(t, uint64(42), first)
	assert.Equal(t, uint64(7), second)
	assert.Empty(t, draws)
}

// ── responses ───────────────────────────────────────────────────────────────

func TestDeviceService_HandleMessage_ResolvesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	ctx := context.Background()

	got := &responses{}
	tid, err := svc.Dispatch(ctx, "watch-1", groceriesPayload, time.Second, got.cb)
	require.NoError(t, err)

	body := json.RawMessage(fmt.Sprintf(`{"tid":%d,"ok":true}`, tid))
	require.NoError(t, svc.HandleMessage(ctx, models.DeviceMessage{DeviceID: "watch-1", Body: body}))
	// повторный ответ игнорируется
	require.NoError(t, svc.HandleMessage(ctx, models.DeviceMessage{DeviceID: "watch-1", Body: body}))

	require.Len(t, got.all(), 1)
	resp := got.all()[0]
	assert.True(t, resp.OK())
	assert.Equal(t, tid, resp.TransactionID)
	assert.JSONEq(t, string(body), string(resp.Body))
	assert.Empty(t, svc.Outstanding())
}

func TestDeviceService_HandleMessage_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	ctx := context.Background()

	err := svc.HandleMessage(ctx, models.DeviceMessage{DeviceID: "watch-1", Body: json.RawMessage(`not json`)})
	require.ErrorIs(t, err, ErrInvalidDeviceMessage)

	require.NoError(t, svc.HandleMessage(ctx, models.DeviceMessage{DeviceID: "watch-1", Body: json.RawMessage(`{"event":"hello"}`)}))
	require.NoError(t, svc.HandleMessage(ctx, models.DeviceMessage{DeviceID: "watch-1", Body: json.RawMessage(`{"tid":123}`)}))
}

func TestDeviceService_HandleMessage_ArbitraryBodies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	ctx := context.Background()

	bodies := []string{
		`[1,2,3]`,
		`"hello"`,
		`42`,
		`null`,
		`{"tid":"abc"}`,
		`{"tid":-1}`,
		`{"tid":1.5}`,
		`{"tid":{"id":1}}`,
	}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			err := svc.HandleMessage(ctx, models.DeviceMessage{DeviceID: "watch-1", Body: json.RawMessage(body)})
			assert.NoError(t, err)
		})
	}
}

func TestDeviceService_HandleMessage_StringTID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	ctx := context.Background()

	got := &responses{}
	tid, err := svc.Dispatch(ctx, "watch-1", groceriesPayload, time.Second, got.cb)
	require.NoError(t, err)

	body := json.RawMessage(fmt.Sprintf(`{"tid":"%d"}`, tid))
	require.NoError(t, svc.HandleMessage(ctx, models.DeviceMessage{DeviceID: "watch-1", Body: body}))

	require.Len(t, got.all(), 1)
	assert.Equal(t, tid, got.all()[0].TransactionID)
	assert.Empty(t, svc.Outstanding())
}

func TestMessageTID(t *testing.T) {
	tests := []struct {
		body   string
		want   uint64
		wantOK bool
	}{
		{`{"tid":7}`, 7, true},
		{`{"tid":"7"}`, 7, true},
		{`{"tid":9007199254740991}`, 9007199254740991, true},
		{`{"other":7}`, 0, false},
		{`{"tid":true}`, 0, false},
		{`[{"tid":7}]`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got, ok := messageTID(json.RawMessage(tt.body))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeviceService_CancelRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, clock, _ := newTestDeviceService(t, ctrl, 5*time.Millisecond)
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	got := &responses{}
	tid, err := svc.Dispatch(context.Background(), "watch-1", groceriesPayload, time.Second, got.cb)
	require.NoError(t, err)

	assert.True(t, svc.CancelRequest(tid))
	assert.False(t, svc.CancelRequest(tid))

	clock.Advance(time.Minute)
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, got.all(), "cancelled transaction never calls back")
}

func TestDeviceService_Request_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := svc.Request(ctx, "watch-1", groceriesPayload, time.Minute)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, models.DeviceCancelled, resp.Status)
	assert.Empty(t, svc.Outstanding())
}

func TestDeviceService_Stop_ResolvesOutstanding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	got := &responses{}
	for range 2 {
		_, err := svc.Dispatch(context.Background(), "watch-1", groceriesPayload, time.Minute, got.cb)
		require.NoError(t, err)
	}

	svc.Stop()

	require.Len(t, got.all(), 2)
	for _, resp := range got.all() {
		assert.Equal(t, models.DeviceNoResponse, resp.Status)
	}
	assert.Empty(t, svc.Outstanding())
}

// ── registry ────────────────────────────────────────────────────────────────

func TestDeviceService_HandleEvent_UpdatesRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, clock, _ := newTestDeviceService(t, ctrl, time.Hour)
	ctx := context.Background()

	var changed []models.Device
	svc.DeviceChanged().Subscribe(func(d models.Device) { changed = append(changed, d) })

	svc.HandleEvent(ctx, models.DeviceEvent{DeviceID: "watch-1", Name: "Watch", State: models.DeviceNotConnected})
	clock.Advance(time.Minute)
	svc.HandleEvent(ctx, models.DeviceEvent{DeviceID: "watch-1", State: models.DeviceReady})

	devices := svc.Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, "Watch", devices[0].Name, "empty name keeps the known one")
	assert.True(t, devices[0].Ready())
	assert.Equal(t, clock.Now(), devices[0].Updated)
	assert.Len(t, changed, 2)
}

func TestDeviceService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, transport, _, _ := newTestDeviceService(t, ctrl, time.Hour)
	ctx := context.Background()

	transport.EXPECT().Devices(gomock.Any()).Return([]models.Device{
		{ID: "b", Name: "Band", State: models.DeviceAppNotInstalled},
		{ID: "a", Name: "Watch", State: models.DeviceReady},
	}, nil)
	require.NoError(t, svc.Refresh(ctx))

	devices := svc.Devices()
	require.Len(t, devices, 2)
	assert.Equal(t, "a", devices[0].ID)
	assert.Equal(t, models.DeviceAppNotInstalled, devices[1].State)

	transport.EXPECT().Devices(gomock.Any()).Return(nil, errors.New("bridge down"))
	require.Error(t, svc.Refresh(ctx))
	assert.Len(t, svc.Devices(), 2, "failed refresh keeps the registry")
}

func TestDeviceService_DefaultDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, prefs := newTestDeviceService(t, ctrl, time.Hour)
	ctx := context.Background()

	_, err := svc.DefaultDevice(ctx)
	require.ErrorIs(t, err, ErrDeviceSelectionRequired, "no devices")

	svc.HandleEvent(ctx, models.DeviceEvent{DeviceID: "a", State: models.DeviceReady})
	d, err := svc.DefaultDevice(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", d.ID)

	svc.HandleEvent(ctx, models.DeviceEvent{DeviceID: "b", State: models.DeviceReady})
	_, err = svc.DefaultDevice(ctx)
	require.ErrorIs(t, err, ErrDeviceSelectionRequired, "two ready devices")

	require.NoError(t, prefs.Set(ctx, PrefDefaultDevice, "b"))
	d, err = svc.DefaultDevice(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", d.ID)

	require.NoError(t, prefs.Set(ctx, PrefDefaultDevice, "unpaired"))
	d, err = svc.DefaultDevice(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Device{ID: "unpaired", State: models.DeviceUnknown}, d)
}
