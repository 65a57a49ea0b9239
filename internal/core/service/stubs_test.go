package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bdhub/shoe-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

var errStorage = errors.New("storage unavailable")

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   []*domain.User
	findErr error
	finds   int
	creates int
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	return r.users, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (string, error) {
	r.creates++
	clone := *u
	clone.ID = "u" + strconv.Itoa(len(r.users)+1)
	r.users = append(r.users, &clone)
	return clone.ID, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (int64, error) {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id, role string) (int64, int64, error) {
	for _, u := range r.users {
		if u.ID == id {
			if u.Role == role {
				return 1, 0, nil
			}
			u.Role = role
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

type stubCartRepo struct {
	items []*domain.CartItem
	seq   int
}

func (r *stubCartRepo) Insert(_ context.Context, item *domain.CartItem) (string, error) {
	r.seq++
	clone := *item
	clone.ID = "c" + strconv.Itoa(r.seq)
	r.items = append(r.items, &clone)
	return clone.ID, nil
}

func (r *stubCartRepo) ListByOwner(_ context.Context, email string) ([]*domain.CartItem, error) {
	out := []*domain.CartItem{}
	for _, it := range r.items {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *stubCartRepo) DeleteOwned(_ context.Context, id, email string) (int64, error) {
	for i, it := range r.items {
		if it.ID == id && it.Email == email {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type stubProductRepo struct {
	products    []*domain.Product
	prefixCalls int
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	return r.products, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (string, error) {
	clone := *p
	clone.ID = "p" + strconv.Itoa(len(r.products)+1)
	r.products = append(r.products, &clone)
	return clone.ID, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, patch domain.ProductPatch) (int64, int64, error) {
	for _, p := range r.products {
		if p.ID == id {
			if patch.Name != nil {
				p.Name = *patch.Name
			}
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) (int64, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubProductRepo) SearchByName(_ context.Context, term string) ([]*domain.Product, error) {
	out := []*domain.Product{}
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) NamesWithPrefix(_ context.Context, prefix string, limit int) ([]string, error) {
	r.prefixCalls++
	out := []string{}
	for _, p := range r.products {
		if strings.HasPrefix(strings.ToLower(p.Name), strings.ToLower(prefix)) {
			out = append(out, p.Name)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type stubCache struct {
	entries     map[string][]string
	getErr      error
	invalidated int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]string)}
}

func (c *stubCache) Get(_ context.Context, q string) ([]string, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	names, ok := c.entries[q]
	return names, ok, nil
}

func (c *stubCache) Set(_ context.Context, q string, names []string) error {
	c.entries[q] = names
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.invalidated++
	c.entries = make(map[string][]string)
	return nil
}

func asUser(email string) context.Context {
	return domain.ContextWithClaims(context.Background(), domain.Claims{"email": email})
}
