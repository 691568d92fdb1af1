package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"ketalog/internal/domain/entity"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/service"
	"ketalog/internal/domain/upstream"
	"ketalog/internal/errors"
	"ketalog/internal/usecase"
)

// QR audiences accepted by WhatsAppQR.
const (
	audiencePartner = "partner"
	audienceSeller  = "seller"
)

type orderBoardService struct {
	orders    upstream.OrderAPI
	directory upstream.DirectoryAPI
	composer  service.WhatsAppComposer
	qrcodes   service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger

	mu          sync.RWMutex
	cache       []entity.Order
	known       map[string]struct{}
	loaded      bool
	issued      uint64 // last sequence handed to a refresh
	applied     uint64 // sequence of the snapshot currently cached
	refreshedAt time.Time
}

// NewOrderBoardService creates a new order board service instance
func NewOrderBoardService(
	orders upstream.OrderAPI,
	directory upstream.DirectoryAPI,
	composer service.WhatsAppComposer,
	qrcodes service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderBoardUsecase {
	return &orderBoardService{
		orders:    orders,
		directory: directory,
		composer:  composer,
		qrcodes:   qrcodes,
		publisher: publisher,
		logger:    logger,
		known:     make(map[string]struct{}),
	}
}

// Refresh fetches the order list and replaces the cached snapshot. Every
// refresh draws a sequence number before the network call; a response whose
// sequence is below the applied one lost the race and is discarded.
func (s *orderBoardService) Refresh(ctx context.Context) (*usecase.BoardSnapshot, error) {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	fetched, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "refresh order board")
	}

	sortOrders(fetched)

	s.mu.Lock()
	if seq < s.applied {
		// A later refresh already landed. Keep its snapshot.
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}

	var fresh []entity.Order
	for _, o := range fetched {
		if _, ok := s.known[o.ID]; !ok {
			s.known[o.ID] = struct{}{}
			if s.loaded {
				fresh = append(fresh, o)
			}
		}
	}

	s.cache = fetched
	s.loaded = true
	s.applied = seq
	s.refreshedAt = time.Now()
	snap := s.snapshotLocked()
	snap.NewOrders = fresh
	s.mu.Unlock()

	for _, o := range fresh {
		s.publish(ctx, &service.OrderEvent{
			Type:     service.OrderEventNew,
			OrderID:  o.ID,
			SellerID: o.Seller.ID(),
			Status:   o.RawStatus(),
		})
	}

	return snap, nil
}

// List filters the cached snapshot. It never touches the backend.
func (s *orderBoardService) List(_ context.Context, query usecase.ListOrdersQuery) (*usecase.BoardSnapshot, error) {
	s.mu.RLock()
	snap := s.snapshotLocked()
	s.mu.RUnlock()

	if q := strings.ToLower(strings.TrimSpace(query.Search)); q != "" {
		snap.Active = filterOrders(snap.Active, q)
		snap.Delivered = filterOrders(snap.Delivered, q)
	}

	switch query.Bucket {
	case "active":
		snap.Delivered = nil
	case "delivered":
		snap.Active = nil
	}

	return snap, nil
}

// Get returns one order, from cache when possible.
func (s *orderBoardService) Get(ctx context.Context, orderID string) (*entity.Order, error) {
	if cached := s.cachedOrder(orderID); cached != nil {
		return cached, nil
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "get order")
	}

	s.storeOrder(order)
	return order, nil
}

// Timeline returns the fulfillment steps for one order.
func (s *orderBoardService) Timeline(ctx context.Context, orderID string) ([]entity.TimelineStep, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return order.Timeline(), nil
}

// AssignPartner assigns a delivery partner, merges the backend's answer into
// the cached order, and builds the WhatsApp briefings.
func (s *orderBoardService) AssignPartner(ctx context.Context, input *usecase.AssignPartnerInput) (*usecase.AssignPartnerResult, error) {
	cached := s.cachedOrder(input.OrderID)
	if cached == nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	partner, err := s.findPartner(ctx, input.PartnerID)
	if err != nil {
		return nil, err
	}

	if !input.OverridePincode {
		sellerPin := cached.SellerPincode()
		if sellerPin != "" && partner.Pincode != "" && sellerPin != partner.Pincode {
			return nil, domainerrors.ErrPincodeMismatch
		}
	}

	reply, err := s.orders.AssignPartner(ctx, input.OrderID, input.PartnerID)
	if err != nil {
		return nil, errors.Wrap(err, "assign partner")
	}

	merged := mergeOrder(cached, reply)
	merged.DeliveryPartner = entity.RefOf(partner)
	s.storeOrder(merged)

	seller := s.resolveSeller(ctx, merged)

	result := &usecase.AssignPartnerResult{Order: merged}
	result.PartnerMessage = s.composer.PartnerMessage(service.PartnerAssignment{
		Order:   merged,
		Seller:  seller,
		Partner: partner,
	})
	result.PartnerLink = s.composer.Link(partner.Mobile, result.PartnerMessage)

	if seller != nil && seller.Mobile != "" {
		result.SellerMessage = s.composer.SellerMessage(merged, seller)
		result.SellerLink = s.composer.Link(seller.Mobile, result.SellerMessage)
	}

	s.publish(ctx, &service.OrderEvent{
		Type:      service.OrderEventAssigned,
		OrderID:   merged.ID,
		SellerID:  merged.Seller.ID(),
		PartnerID: partner.ID,
		Status:    merged.RawStatus(),
	})

	return result, nil
}

// UnassignPartner removes the delivery partner from an order. The backend's
// reply often comes back with bare IDs where the cache holds full records;
// the merge keeps the resolved copies.
func (s *orderBoardService) UnassignPartner(ctx context.Context, orderID string) (*entity.Order, error) {
	cached := s.cachedOrder(orderID)
	if cached == nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	reply, err := s.orders.UnassignPartner(ctx, orderID)
	if err != nil {
		// The cache may now disagree with the backend. Re-sync this order
		// before surfacing the failure.
		s.resync(ctx, orderID)
		return nil, errors.Wrap(err, "unassign partner")
	}

	merged := mergeOrder(cached, reply)
	merged.DeliveryPartner = entity.Ref[entity.DeliveryPartner]{}
	s.storeOrder(merged)

	s.publish(ctx, &service.OrderEvent{
		Type:     service.OrderEventUnassigned,
		OrderID:  merged.ID,
		SellerID: merged.Seller.ID(),
		Status:   merged.RawStatus(),
	})

	return merged, nil
}

// MarkDelivered moves an assigned order to delivered. Backends without the
// dedicated status endpoint get the generic order update instead.
func (s *orderBoardService) MarkDelivered(ctx context.Context, orderID string) (*entity.Order, error) {
	cached := s.cachedOrder(orderID)
	if cached == nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	if !cached.PartnerAssigned() {
		return nil, domainerrors.ErrPartnerNotAssigned
	}

	reply, err := s.orders.UpdateStatus(ctx, orderID, entity.StatusDelivered)
	if err != nil {
		// Whatever the status endpoint's complaint, the generic order
		// update gets one shot before the failure surfaces.
		reply, err = s.orders.PatchOrder(ctx, orderID, map[string]any{
			"orderStatus": entity.StatusDelivered,
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "mark delivered")
	}

	merged := mergeOrder(cached, reply)
	merged.OrderStatus = entity.StatusDelivered
	s.storeOrder(merged)

	s.publish(ctx, &service.OrderEvent{
		Type:      service.OrderEventDelivered,
		OrderID:   merged.ID,
		SellerID:  merged.Seller.ID(),
		PartnerID: merged.DeliveryPartner.ID(),
		Status:    entity.StatusDelivered,
	})

	return merged, nil
}

// Delete removes an order. The cached copy is dropped only after the backend
// acknowledges.
func (s *orderBoardService) Delete(ctx context.Context, orderID string) error {
	cached := s.cachedOrder(orderID)
	if cached == nil {
		return domainerrors.ErrOrderNotFound
	}

	if err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		return errors.Wrap(err, "delete order")
	}

	s.dropOrder(orderID)

	s.publish(ctx, &service.OrderEvent{
		Type:     service.OrderEventDeleted,
		OrderID:  orderID,
		SellerID: cached.Seller.ID(),
	})

	return nil
}

// NotifySeller re-sends the assignment for an already assigned order and
// rebuilds the "pack the order" WhatsApp message for the seller. Re-sending
// is idempotent on the backend and doubles as its re-notification hook.
func (s *orderBoardService) NotifySeller(ctx context.Context, orderID string) (*usecase.SellerNotice, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.PartnerAssigned() {
		return nil, domainerrors.ErrPartnerNotAssigned
	}

	reply, err := s.orders.AssignPartner(ctx, orderID, order.DeliveryPartner.ID())
	if err != nil {
		return nil, errors.Wrap(err, "renotify assignment")
	}

	order = mergeOrder(order, reply)
	s.storeOrder(order)

	seller := s.sellerWithMobile(ctx, order)
	if seller == nil || seller.Mobile == "" {
		return nil, domainerrors.ErrMissingContact
	}

	message := s.composer.SellerMessage(order, seller)
	return &usecase.SellerNotice{
		Message: message,
		Link:    s.composer.Link(seller.Mobile, message),
	}, nil
}

// WhatsAppQR renders the click-to-chat link for the given audience as a PNG.
func (s *orderBoardService) WhatsAppQR(ctx context.Context, orderID, audience string) ([]byte, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var link string
	switch audience {
	case audienceSeller:
		seller := s.resolveSeller(ctx, order)
		if seller == nil || seller.Mobile == "" {
			return nil, domainerrors.ErrMissingContact
		}
		link = s.composer.Link(seller.Mobile, s.composer.SellerMessage(order, seller))

	case audiencePartner:
		if !order.PartnerAssigned() {
			return nil, domainerrors.ErrPartnerNotAssigned
		}
		partner := order.DeliveryPartner.Record()
		if partner == nil {
			partner, err = s.findPartner(ctx, order.DeliveryPartner.ID())
			if err != nil {
				return nil, err
			}
		}
		if partner.Mobile == "" {
			return nil, domainerrors.ErrMissingContact
		}
		message := s.composer.PartnerMessage(service.PartnerAssignment{
			Order:   order,
			Seller:  s.resolveSeller(ctx, order),
			Partner: partner,
		})
		link = s.composer.Link(partner.Mobile, message)

	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("audience must be partner or seller")
	}

	png, err := s.qrcodes.GenerateLinkQR(link)
	if err != nil {
		return nil, errors.Wrap(err, "render WhatsApp QR")
	}

	return png, nil
}

// --- internals ---

// snapshotLocked builds a BoardSnapshot from the cache. Callers hold s.mu.
func (s *orderBoardService) snapshotLocked() *usecase.BoardSnapshot {
	snap := &usecase.BoardSnapshot{
		Sequence:    s.applied,
		RefreshedAt: s.refreshedAt,
	}

	for _, o := range s.cache {
		if o.Delivered() {
			snap.Delivered = append(snap.Delivered, o)
		} else {
			snap.Active = append(snap.Active, o)
		}
	}

	return snap
}

func (s *orderBoardService) cachedOrder(orderID string) *entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.cache {
		if s.cache[i].ID == orderID {
			o := s.cache[i]
			return &o
		}
	}

	return nil
}

func (s *orderBoardService) storeOrder(order *entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.known[order.ID] = struct{}{}
	for i := range s.cache {
		if s.cache[i].ID == order.ID {
			s.cache[i] = *order
			return
		}
	}

	s.cache = append(s.cache, *order)
	sortOrders(s.cache)
}

func (s *orderBoardService) dropOrder(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cache {
		if s.cache[i].ID == orderID {
			s.cache = append(s.cache[:i], s.cache[i+1:]...)
			break
		}
	}
	delete(s.known, orderID)
}

// resync refetches one order after a failed mutation so the cache reflects
// whatever state the backend landed in. Best effort.
func (s *orderBoardService) resync(ctx context.Context, orderID string) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		s.logger.Warn("order resync failed", "order_id", orderID, "error", err)
		return
	}

	s.storeOrder(order)
}

func (s *orderBoardService) findPartner(ctx context.Context, partnerID string) (*entity.DeliveryPartner, error) {
	partners, err := s.directory.ListPartners(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list delivery partners")
	}

	for i := range partners {
		if partners[i].ID == partnerID {
			return &partners[i], nil
		}
	}

	return nil, domainerrors.ErrPartnerNotFound
}

// resolveSeller returns the full seller record behind an order, looking it
// up in the directory when the order carries only an ID. Returns nil when
// nothing resolves.
func (s *orderBoardService) resolveSeller(ctx context.Context, order *entity.Order) *entity.Seller {
	if seller := order.Seller.Record(); seller != nil {
		return seller
	}

	id := order.Seller.ID()
	if id == "" {
		return nil
	}

	detail, err := s.directory.GetSellerDetail(ctx, id)
	if err != nil {
		s.logger.Warn("seller lookup failed", "seller_id", id, "error", err)
		return nil
	}

	return detail.Profile
}

// sellerWithMobile resolves the order's seller and, when the resolved
// record carries no mobile number, falls back to the seller-detail fetch,
// which also exposes the owning account's number.
func (s *orderBoardService) sellerWithMobile(ctx context.Context, order *entity.Order) *entity.Seller {
	seller := s.resolveSeller(ctx, order)
	if seller == nil || seller.Mobile != "" || seller.ID == "" {
		return seller
	}

	detail, err := s.directory.GetSellerDetail(ctx, seller.ID)
	if err != nil {
		s.logger.Warn("seller mobile lookup failed", "seller_id", seller.ID, "error", err)
		return seller
	}

	enriched := *seller
	switch {
	case detail.Profile != nil && detail.Profile.Mobile != "":
		enriched.Mobile = detail.Profile.Mobile
	case detail.User != nil:
		enriched.Mobile = detail.User.Mobile
	}

	return &enriched
}

func (s *orderBoardService) publish(ctx context.Context, event *service.OrderEvent) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("order event publish failed", "type", event.Type, "order_id", event.OrderID, "error", err)
	}
}

func sortOrders(orders []entity.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
}

func filterOrders(orders []entity.Order, q string) []entity.Order {
	var out []entity.Order
	for _, o := range orders {
		if orderMatches(&o, q) {
			out = append(out, o)
		}
	}

	return out
}

func orderMatches(o *entity.Order, q string) bool {
	if strings.Contains(strings.ToLower(o.ID), q) {
		return true
	}
	if strings.Contains(strings.ToLower(o.Reference()), q) {
		return true
	}
	if o.Buyer != nil && strings.Contains(strings.ToLower(o.Buyer.FullName), q) {
		return true
	}
	if seller := o.Seller.Record(); seller != nil && strings.Contains(strings.ToLower(seller.ShopName), q) {
		return true
	}

	return false
}
