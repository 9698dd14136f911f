package service_test

import (
	"context"
	"strings"
	"sync"

	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/repository"
)

// In-memory fakes for the repository interfaces.

type fakeClienteRepo struct {
	clientes map[int]entity.Cliente
}

func newFakeClienteRepo(clientes ...entity.Cliente) *fakeClienteRepo {
	f := &fakeClienteRepo{clientes: map[int]entity.Cliente{}}
	for _, c := range clientes {
		f.clientes[c.ID] = c
	}
	return f
}

func (f *fakeClienteRepo) Get(_ context.Context, id int) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeClienteRepo) FindAll(context.Context) ([]entity.Cliente, error) {
	var out []entity.Cliente
	for _, c := range f.clientes {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClienteRepo) Search(_ context.Context, key string) ([]entity.Cliente, error) {
	var out []entity.Cliente
	for _, c := range f.clientes {
		if strings.Contains(strings.ToLower(c.Nome), strings.ToLower(key)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	c.ID = len(f.clientes) + 1
	f.clientes[c.ID] = *c
	return nil
}

func (f *fakeClienteRepo) Update(_ context.Context, c *entity.Cliente) error {
	if _, ok := f.clientes[c.ID]; !ok {
		return repository.ErrNotFound
	}
	f.clientes[c.ID] = *c
	return nil
}

func (f *fakeClienteRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.clientes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.clientes, id)
	return nil
}

type fakeCatalogRepo struct {
	items       map[entity.CatalogKind][]entity.CatalogItem
	nextID      int
	createCalls int
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: map[entity.CatalogKind][]entity.CatalogItem{}}
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func (f *fakeCatalogRepo) Get(_ context.Context, kind entity.CatalogKind, id int) (*entity.CatalogItem, error) {
	for _, it := range f.items[kind] {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) FindByNormalizedLabel(_ context.Context, kind entity.CatalogKind, label string) (*entity.CatalogItem, error) {
	for _, it := range f.items[kind] {
		if normalize(it.Label) == normalize(label) {
			return &it, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) FindAll(_ context.Context, kind entity.CatalogKind) ([]entity.CatalogItem, error) {
	return f.items[kind], nil
}

func (f *fakeCatalogRepo) Search(_ context.Context, kind entity.CatalogKind, key string) ([]entity.CatalogItem, error) {
	var out []entity.CatalogItem
	for _, it := range f.items[kind] {
		if strings.Contains(normalize(it.Label), normalize(key)) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) Create(_ context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error {
	f.nextID++
	f.createCalls++
	item.ID = f.nextID
	f.items[kind] = append(f.items[kind], *item)
	return nil
}

func (f *fakeCatalogRepo) Update(_ context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error {
	for i, it := range f.items[kind] {
		if it.ID == item.ID {
			f.items[kind][i] = *item
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeCatalogRepo) Delete(_ context.Context, kind entity.CatalogKind, id int) error {
	for i, it := range f.items[kind] {
		if it.ID == id {
			f.items[kind] = append(f.items[kind][:i], f.items[kind][i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakePedidoRepo struct {
	pedidos map[int]*entity.Pedido
	nextID  int
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: map[int]*entity.Pedido{}}
}

func (f *fakePedidoRepo) Create(_ context.Context, pedido *entity.Pedido) error {
	f.nextID++
	pedido.ID = f.nextID
	for i := range pedido.Itens {
		pedido.Itens[i].ID = i + 1
		pedido.Itens[i].PedidoID = pedido.ID
	}
	stored := *pedido
	stored.Itens = append([]entity.PedidoItem(nil), pedido.Itens...)
	f.pedidos[pedido.ID] = &stored
	return nil
}

func (f *fakePedidoRepo) Get(_ context.Context, id int) (*entity.Pedido, error) {
	p, ok := f.pedidos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePedidoRepo) GetStatus(_ context.Context, id int) (entity.PedidoStatus, error) {
	p, ok := f.pedidos[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return p.Status, nil
}

func (f *fakePedidoRepo) ChangeStatus(_ context.Context, id int, status entity.PedidoStatus) error {
	p, ok := f.pedidos[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Status = status
	return nil
}

func (f *fakePedidoRepo) FindViewHome(context.Context, int) ([]entity.Pedido, error) {
	var out []entity.Pedido
	for _, p := range f.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

type fakeEventRepo struct {
	events  []entity.EventChangeStatus
	failErr error
}

func (f *fakeEventRepo) AppendStatusChange(_ context.Context, event *entity.EventChangeStatus) error {
	if f.failErr != nil {
		return f.failErr
	}
	event.ID = len(f.events) + 1
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventRepo) FindByPedido(_ context.Context, idPedido int) ([]entity.EventChangeStatus, error) {
	var out []entity.EventChangeStatus
	for _, ev := range f.events {
		if ev.IdPedido == idPedido {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeUsuarioRepo struct {
	mu       sync.Mutex
	usuarios map[string]*entity.Usuario
	nextID   int
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
}

func (f *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.usuarios[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsuarioRepo) Create(_ context.Context, usuario *entity.Usuario) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	usuario.ID = f.nextID
	cp := *usuario
	f.usuarios[strings.ToLower(usuario.Email)] = &cp
	return nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, usuario *entity.Usuario) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.usuarios[strings.ToLower(usuario.Email)]; !ok {
		return repository.ErrNotFound
	}
	cp := *usuario
	f.usuarios[strings.ToLower(usuario.Email)] = &cp
	return nil
}

type publishedEvent struct {
	topic string
	key   string
	event any
}

type spyPublisher struct {
	published []publishedEvent
	failErr   error
}

func (s *spyPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.published = append(s.published, publishedEvent{topic: topic, key: key, event: event})
	return nil
}
