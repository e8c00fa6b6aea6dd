// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-list-keeper/internal/adapter"
	"github.com/MKhiriev/go-list-keeper/internal/logger"
	"github.com/MKhiriev/go-list-keeper/internal/notify"
	"github.com/MKhiriev/go-list-keeper/models"
)

// MaxTransactionID bounds transaction ids to 53 bits so they survive a
// round trip through JSON numbers on the device side.
const MaxTransactionID = 1<<53 - 1

const (
	defaultDeviceTimeout      = 10 * time.Second
	defaultDevicePollInterval = time.Second
)

type pendingTransaction struct {
	id       uint64
	deviceID string
	issued   time.Time
	timeout  time.Duration
	cb       func(models.DeviceResponse)
}

type deviceService struct {
	transport adapter.DeviceTransport
	prefs     PreferencesService

	defaultTimeout time.Duration
	pollInterval   time.Duration
	now            func() time.Time
	random         func() uint64

	mu          sync.Mutex
	outstanding map[uint64]*pendingTransaction
	pollCancel  context.CancelFunc
	pollWG      sync.WaitGroup

	registryMu sync.RWMutex
	registry   map[string]models.Device
	changes    notify.Stream[models.Device]

	logger *logger.Logger
}

// NewDeviceService constructs a [DeviceService]. Non-positive durations
// fall back to a 10 second request timeout and a 1 second poll.
func NewDeviceService(transport adapter.DeviceTransport, prefs PreferencesService, defaultTimeout, pollInterval time.Duration, log *logger.Logger) DeviceService {
	if defaultTimeout <= 0 {
		defaultTimeout = defaultDeviceTimeout
	}
	if pollInterval <= 0 {
		pollInterval = defaultDevicePollInterval
	}
	return &deviceService{
		transport:      transport,
		prefs:          prefs,
		defaultTimeout: defaultTimeout,
		pollInterval:   pollInterval,
		now:            time.Now,
		random:         rand.Uint64,
		outstanding:    make(map[uint64]*pendingTransaction),
		registry:       make(map[string]models.Device),
		logger:         log,
	}
}

func (s *deviceService) Dispatch(ctx context.Context, deviceID string, payload json.RawMessage, timeout time.Duration, cb func(models.DeviceResponse)) (uint64, error) {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		device, err := s.DefaultDevice(ctx)
		if err != nil {
			return 0, err
		}
		deviceID = device.ID
	}

	if device, known := s.device(deviceID); known && !device.Ready() {
		log.Debug().Str("device_id", deviceID).Str("state", string(device.State)).Msg("device not ready, request not dispatched")
		cb(models.DeviceResponse{DeviceID: deviceID, Status: models.DeviceNotReady})
		return 0, nil
	}

	if timeout <= 0 {
		timeout = s.defaultTimeout
	}

	s.mu.Lock()
	tid := s.newTransactionIDLocked()
	s.outstanding[tid] = &pendingTransaction{
		id:       tid,
		deviceID: deviceID,
		issued:   s.now(),
		timeout:  timeout,
		cb:       cb,
	}
	s.startPollLocked()
	s.mu.Unlock()

	env := models.DeviceEnvelope{DeviceID: deviceID, Payload: payload, TransactionID: &tid}
	if err := s.transport.Send(ctx, env); err != nil {
		s.remove(tid)
		log.Err(err).
			Str("func", "deviceService.Dispatch").
			Str("device_id", deviceID).
			Uint64("tid", tid).
			Msg("failed to send device request")
		return 0, fmt.Errorf("%w: %w", ErrDeviceSend, err)
	}

	return tid, nil
}

func (s *deviceService) Request(ctx context.Context, deviceID string, payload json.RawMessage, timeout time.Duration) (models.DeviceResponse, error) {
	done := make(chan models.DeviceResponse, 1)
	tid, err := s.Dispatch(ctx, deviceID, payload, timeout, func(resp models.DeviceResponse) {
		done <- resp
	})
	if err != nil {
		return models.DeviceResponse{}, err
	}

	select {
	case resp := <-done:
		return resp, nil
	case <-ctx.Done():
		if !s.CancelRequest(tid) {
			// the transaction ended while ctx was being cancelled
			select {
			case resp := <-done:
				return resp, nil
			default:
			}
		}
		return models.DeviceResponse{TransactionID: tid, DeviceID: deviceID, Status: models.DeviceCancelled}, ctx.Err()
	}
}

func (s *deviceService) CancelRequest(tid uint64) bool {
	return s.remove(tid) != nil
}

func (s *deviceService) Outstanding() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uint64, 0, len(s.outstanding))
	for id := range s.outstanding {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// HandleMessage resolves the transaction whose id the body echoes as "tid".
// Bodies without a usable tid and messages for transactions that already
// ended are ignored. Only a body that is not JSON at all is an error.
func (s *deviceService) HandleMessage(ctx context.Context, msg models.DeviceMessage) error {
	log := logger.FromContext(ctx).WithDevice(msg.DeviceID)

	if !json.Valid(msg.Body) {
		return fmt.Errorf("%w: body is not valid JSON", ErrInvalidDeviceMessage)
	}
	tid, ok := messageTID(msg.Body)
	if !ok {
		log.Debug().RawJSON("body", msg.Body).Msg("device message without transaction id")
		return nil
	}

	p := s.remove(tid)
	if p == nil {
		log.Debug().Uint64("tid", tid).Msg("ignoring response to ended transaction")
		return nil
	}

	p.cb(models.DeviceResponse{
		TransactionID: p.id,
		DeviceID:      p.deviceID,
		Status:        models.DeviceResponseOK,
		Body:          msg.Body,
	})
	return nil
}

// messageTID extracts the "tid" member of an object body. Numbers and
// numeric strings are accepted; anything else means no transaction.
func messageTID(body json.RawMessage) (uint64, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return 0, false
	}
	raw, ok := fields["tid"]
	if !ok {
		return 0, false
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	tid, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return tid, true
}

func (s *deviceService) HandleEvent(ctx context.Context, ev models.DeviceEvent) {
	logger.FromContext(ctx).Info().
		Str("device_id", ev.DeviceID).
		Str("state", string(ev.State)).
		Msg("device state changed")

	s.registryMu.Lock()
	device := s.registry[ev.DeviceID]
	device.ID = ev.DeviceID
	if ev.Name != "" {
		device.Name = ev.Name
	}
	device.State = ev.State
	device.Updated = s.now()
	s.registry[ev.DeviceID] = device
	s.registryMu.Unlock()

	s.changes.Publish(device)
}

func (s *deviceService) Refresh(ctx context.Context) error {
	devices, err := s.transport.Devices(ctx)
	if err != nil {
		return fmt.Errorf("refresh devices: %w", err)
	}

	for _, d := range devices {
		s.HandleEvent(ctx, models.DeviceEvent{DeviceID: d.ID, Name: d.Name, State: d.State})
	}
	return nil
}

func (s *deviceService) Devices() []models.Device {
	s.registryMu.RLock()
	defer s.registryMu.RUnlock()

	out := make([]models.Device, 0, len(s.registry))
	for _, d := range s.registry {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b models.Device) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// DefaultDevice prefers the pinned device, then the only ready device.
func (s *deviceService) DefaultDevice(ctx context.Context) (models.Device, error) {
	if pinned := GetPreference(ctx, s.prefs, PrefDefaultDevice, ""); pinned != "" {
		if device, known := s.device(pinned); known {
			return device, nil
		}
		return models.Device{ID: pinned, State: models.DeviceUnknown}, nil
	}

	var ready []models.Device
	for _, d := range s.Devices() {
		if d.Ready() {
			ready = append(ready, d)
		}
	}
	if len(ready) != 1 {
		return models.Device{}, fmt.Errorf("%w: %d devices ready", ErrDeviceSelectionRequired, len(ready))
	}
	return ready[0], nil
}

func (s *deviceService) DeviceChanged() *notify.Stream[models.Device] {
	return &s.changes
}

// Stop ends the timeout poll. Outstanding transactions are resolved with
// [models.DeviceNoResponse].
func (s *deviceService) Stop() {
	s.mu.Lock()
	cancel := s.pollCancel
	s.pollCancel = nil
	pending := s.outstanding
	s.outstanding = make(map[uint64]*pendingTransaction)
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.pollWG.Wait()

	for _, p := range pending {
		p.cb(models.DeviceResponse{TransactionID: p.id, DeviceID: p.deviceID, Status: models.DeviceNoResponse})
	}
}

func (s *deviceService) device(id string) (models.Device, bool) {
	s.registryMu.RLock()
	defer s.registryMu.RUnlock()
	d, ok := s.registry[id]
	return d, ok
}

// newTransactionIDLocked draws until the id is non-zero and not outstanding.
func (s *deviceService) newTransactionIDLocked() uint64 {
	for {
		id := s.random() & MaxTransactionID
		if id == 0 {
			continue
		}
		if _, taken := s.outstanding[id]; !taken {
			return id
		}
	}
}

// remove drops the transaction and stops the poll when nothing is left.
func (s *deviceService) remove(tid uint64) *pendingTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.outstanding[tid]
	if !ok {
		return nil
	}
	delete(s.outstanding, tid)
	s.stopPollIfIdleLocked()
	return p
}

func (s *deviceService) startPollLocked() {
	if s.pollCancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.pollCancel = cancel
	s.pollWG.Add(1)
	go s.poll(ctx)
}

func (s *deviceService) stopPollIfIdleLocked() {
	if len(s.outstanding) > 0 || s.pollCancel == nil {
		return
	}
	s.pollCancel()
	s.pollCancel = nil
}

func (s *deviceService) poll(ctx context.Context) {
	defer s.pollWG.Done()
	t := time.NewTicker(s.pollInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.expire()
		}
	}
}

// expire resolves every transaction older than its timeout. Callbacks run
// outside the lock.
func (s *deviceService) expire() {
	now := s.now()

	s.mu.Lock()
	var expired []*pendingTransaction
	for id, p := range s.outstanding {
		if now.Sub(p.issued) > p.timeout {
			expired = append(expired, p)
			delete(s.outstanding, id)
		}
	}
	s.stopPollIfIdleLocked()
	s.mu.Unlock()

	for _, p := range expired {
		s.logger.Debug().Str("device_id", p.deviceID).Uint64("tid", p.id).Msg("device transaction timed out")
		p.cb(models.DeviceResponse{TransactionID: p.id, DeviceID: p.deviceID, Status: models.DeviceNoResponse})
	}
}
