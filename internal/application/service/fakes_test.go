package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/distroflow/distribution-api/internal/domain/entity"
	"github.com/distroflow/distribution-api/internal/domain/enum"
	"github.com/distroflow/distribution-api/internal/domain/repository"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/google/uuid"
)

// In-memory repository fakes. Lookups mirror the gorm implementations and
// return (nil, nil) when a row is missing.

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) CreateBatch(ctx context.Context, products []entity.Product) error {
	for i := range products {
		if err := r.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByShortCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ShortCode == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	all, _ := r.ListAll(context.Background())
	if params == nil || params.Search == "" {
		return all, int64(len(all)), nil
	}
	needle := strings.ToLower(params.Search)
	var out []entity.Product
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.ShortCode), needle) {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListWithCursor(_ context.Context, _ *repository.ProductCursorFilterParams) ([]entity.Product, error) {
	return r.ListAll(context.Background())
}

func (r *fakeProductRepo) ListAll(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) GetLowStock(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.Quantity <= p.QuantityAlert {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	if p, ok := r.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *fakeProductRepo) AtomicDecrementBatch(_ context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, qty := range decrements {
		p, ok := r.products[id]
		if !ok || p.Quantity < qty {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, qty := range decrements {
		r.products[id].Quantity -= qty
	}
	return nil, nil
}

func (r *fakeProductRepo) AtomicIncrementBatch(_ context.Context, increments map[uuid.UUID]int) error {
	for id, qty := range increments {
		if p, ok := r.products[id]; ok {
			p.Quantity += qty
		}
	}
	return nil
}

type fakeStoreRepo struct {
	stores map[uuid.UUID]*entity.Store
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	r := &fakeStoreRepo{stores: make(map[uuid.UUID]*entity.Store)}
	for _, s := range stores {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		r.stores[s.ID] = s
	}
	return r
}

func (r *fakeStoreRepo) Create(_ context.Context, store *entity.Store) error {
	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Store, error) {
	return r.stores[id], nil
}

func (r *fakeStoreRepo) GetByName(_ context.Context, name string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStoreRepo) Update(_ context.Context, store *entity.Store) error {
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.stores, id)
	return nil
}

func (r *fakeStoreRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Store, int64, error) {
	all, _ := r.ListAll(context.Background())
	return all, int64(len(all)), nil
}

func (r *fakeStoreRepo) ListAll(_ context.Context) ([]entity.Store, error) {
	out := make([]entity.Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	stores *fakeStoreRepo
}

func newFakeOrderRepo(stores *fakeStoreRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order), stores: stores}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetByInvoiceNo(_ context.Context, invoiceNo string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.InvoiceNo == invoiceNo {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) withStore(o *entity.Order) *entity.Order {
	cp := *o
	if r.stores != nil {
		if s, ok := r.stores.stores[o.StoreID]; ok {
			cp.Store = *s
		}
	}
	return &cp
}

func (r *fakeOrderRepo) GetWithDetails(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return r.withStore(o), nil
}

func (r *fakeOrderRepo) GetManyWithDetails(_ context.Context, ids []uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			out = append(out, *r.withStore(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.Status == enum.OrderStatusCancelled {
			continue
		}
		if o.OrderDate.Before(start) || o.OrderDate.After(end) {
			continue
		}
		out = append(out, *r.withStore(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.Before(out[j].OrderDate) })
	return out, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	existing, ok := r.orders[order.ID]
	if !ok {
		r.orders[order.ID] = order
		return nil
	}
	items := existing.Items
	*existing = *order
	if order.Items == nil {
		existing.Items = items
	}
	return nil
}

func (r *fakeOrderRepo) ReplaceItems(_ context.Context, orderID uuid.UUID, items []entity.OrderItem) error {
	o, ok := r.orders[orderID]
	if !ok {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	o.Items = items
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, _ *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *fakeOrderRepo) GetLatestByStore(_ context.Context, storeID uuid.UUID, limit int) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.StoreID == storeID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakePreOrderRepo struct {
	preOrders map[uuid.UUID]*entity.PreOrder
	orders    *fakeOrderRepo
}

func newFakePreOrderRepo(orders *fakeOrderRepo) *fakePreOrderRepo {
	return &fakePreOrderRepo{preOrders: make(map[uuid.UUID]*entity.PreOrder), orders: orders}
}

func (r *fakePreOrderRepo) Create(_ context.Context, preOrder *entity.PreOrder) error {
	if preOrder.ID == uuid.Nil {
		preOrder.ID = uuid.New()
	}
	for i := range preOrder.Items {
		preOrder.Items[i].PreOrderID = preOrder.ID
	}
	r.preOrders[preOrder.ID] = preOrder
	return nil
}

func (r *fakePreOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PreOrder, error) {
	return r.preOrders[id], nil
}

func (r *fakePreOrderRepo) GetWithDetails(_ context.Context, id uuid.UUID) (*entity.PreOrder, error) {
	return r.preOrders[id], nil
}

func (r *fakePreOrderRepo) Update(_ context.Context, preOrder *entity.PreOrder) error {
	existing, ok := r.preOrders[preOrder.ID]
	if !ok {
		r.preOrders[preOrder.ID] = preOrder
		return nil
	}
	items := existing.Items
	*existing = *preOrder
	if preOrder.Items == nil {
		existing.Items = items
	}
	return nil
}

func (r *fakePreOrderRepo) ReplaceItems(_ context.Context, preOrderID uuid.UUID, items []entity.PreOrderItem) error {
	p, ok := r.preOrders[preOrderID]
	if !ok {
		return nil
	}
	for i := range items {
		items[i].PreOrderID = preOrderID
	}
	p.Items = items
	return nil
}

func (r *fakePreOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.preOrders, id)
	return nil
}

func (r *fakePreOrderRepo) List(_ context.Context, _ *repository.PreOrderFilterParams) ([]entity.PreOrder, int64, error) {
	var out []entity.PreOrder
	for _, p := range r.preOrders {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePreOrderRepo) Convert(ctx context.Context, preOrder *entity.PreOrder, order *entity.Order) error {
	if err := r.orders.Create(ctx, order); err != nil {
		return err
	}
	preOrder.Status = enum.PreOrderStatusConfirmed
	preOrder.ConvertedOrderID = &order.ID
	r.preOrders[preOrder.ID] = preOrder
	return nil
}

type fakePriceListRepo struct {
	lists map[uuid.UUID]*entity.PriceList
}

func newFakePriceListRepo(lists ...*entity.PriceList) *fakePriceListRepo {
	r := &fakePriceListRepo{lists: make(map[uuid.UUID]*entity.PriceList)}
	for _, l := range lists {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		r.lists[l.ID] = l
	}
	return r
}

func (r *fakePriceListRepo) Create(_ context.Context, priceList *entity.PriceList) error {
	if priceList.ID == uuid.Nil {
		priceList.ID = uuid.New()
	}
	r.lists[priceList.ID] = priceList
	return nil
}

func (r *fakePriceListRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PriceList, error) {
	return r.lists[id], nil
}

func (r *fakePriceListRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.PriceList, error) {
	return r.lists[id], nil
}

func (r *fakePriceListRepo) Update(_ context.Context, priceList *entity.PriceList) error {
	r.lists[priceList.ID] = priceList
	return nil
}

func (r *fakePriceListRepo) ReplaceItems(_ context.Context, priceListID uuid.UUID, items []entity.PriceListItem) error {
	if l, ok := r.lists[priceListID]; ok {
		l.Items = items
	}
	return nil
}

func (r *fakePriceListRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.lists, id)
	return nil
}

func (r *fakePriceListRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.PriceList, int64, error) {
	var out []entity.PriceList
	for _, l := range r.lists {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
}

func newFakeVendorRepo(vendors ...*entity.Vendor) *fakeVendorRepo {
	r := &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
	for _, v := range vendors {
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		r.vendors[v.ID] = v
	}
	return r
}

func (r *fakeVendorRepo) Create(_ context.Context, vendor *entity.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return r.vendors[id], nil
}

func (r *fakeVendorRepo) GetByName(_ context.Context, name string) (*entity.Vendor, error) {
	for _, v := range r.vendors {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) Update(_ context.Context, vendor *entity.Vendor) error {
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.vendors, id)
	return nil
}

func (r *fakeVendorRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Vendor, int64, error) {
	var out []entity.Vendor
	for _, v := range r.vendors {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

type fakePurchaseOrderRepo struct {
	pos map[uuid.UUID]*entity.PurchaseOrder
}

func newFakePurchaseOrderRepo() *fakePurchaseOrderRepo {
	return &fakePurchaseOrderRepo{pos: make(map[uuid.UUID]*entity.PurchaseOrder)}
}

func (r *fakePurchaseOrderRepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	for i := range po.Items {
		if po.Items[i].ID == uuid.Nil {
			po.Items[i].ID = uuid.New()
		}
		po.Items[i].PurchaseOrderID = po.ID
	}
	r.pos[po.ID] = po
	return nil
}

func (r *fakePurchaseOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	return r.pos[id], nil
}

func (r *fakePurchaseOrderRepo) GetWithDetails(_ context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	return r.pos[id], nil
}

func (r *fakePurchaseOrderRepo) GetByPONumber(_ context.Context, poNumber string) (*entity.PurchaseOrder, error) {
	for _, po := range r.pos {
		if po.PONumber == poNumber {
			return po, nil
		}
	}
	return nil, nil
}

func (r *fakePurchaseOrderRepo) Update(_ context.Context, po *entity.PurchaseOrder) error {
	existing, ok := r.pos[po.ID]
	if !ok {
		r.pos[po.ID] = po
		return nil
	}
	items := existing.Items
	*existing = *po
	if po.Items == nil {
		existing.Items = items
	}
	return nil
}

func (r *fakePurchaseOrderRepo) UpdateItem(_ context.Context, item *entity.PurchaseOrderItem) error {
	po, ok := r.pos[item.PurchaseOrderID]
	if !ok {
		return nil
	}
	for i := range po.Items {
		if po.Items[i].ID == item.ID {
			po.Items[i] = *item
		}
	}
	return nil
}

func (r *fakePurchaseOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.pos, id)
	return nil
}

func (r *fakePurchaseOrderRepo) List(_ context.Context, _ *repository.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	var out []entity.PurchaseOrder
	for _, po := range r.pos {
		out = append(out, *po)
	}
	return out, int64(len(out)), nil
}

func (r *fakePurchaseOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.PurchaseOrderStatus) error {
	if po, ok := r.pos[id]; ok {
		po.Status = status
	}
	return nil
}

func (r *fakePurchaseOrderRepo) UpdatePaymentStatus(_ context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	if po, ok := r.pos[id]; ok {
		po.PaymentStatus = status
	}
	return nil
}

type fakeVendorInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.VendorInvoice
}

func newFakeVendorInvoiceRepo() *fakeVendorInvoiceRepo {
	return &fakeVendorInvoiceRepo{invoices: make(map[uuid.UUID]*entity.VendorInvoice)}
}

func (r *fakeVendorInvoiceRepo) Create(_ context.Context, invoice *entity.VendorInvoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeVendorInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.VendorInvoice, error) {
	return r.invoices[id], nil
}

func (r *fakeVendorInvoiceRepo) Update(_ context.Context, invoice *entity.VendorInvoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeVendorInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeVendorInvoiceRepo) ListByVendor(_ context.Context, vendorID uuid.UUID, _ *pagination.PaginationParams) ([]entity.VendorInvoice, int64, error) {
	var out []entity.VendorInvoice
	for _, inv := range r.invoices {
		if inv.VendorID == vendorID {
			out = append(out, *inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceDate.Before(out[j].InvoiceDate) })
	return out, int64(len(out)), nil
}

func (r *fakeVendorInvoiceRepo) OutstandingTotal(_ context.Context, vendorID uuid.UUID) (int64, error) {
	var total int64
	for _, inv := range r.invoices {
		if inv.VendorID == vendorID && !inv.Paid {
			total += inv.Amount
		}
	}
	return total, nil
}
