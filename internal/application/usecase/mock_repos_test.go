package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/banco-horas-api/internal/domain"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	items map[string]*entity.Employee
}

func newMockEmployeeRepo(list ...*entity.Employee) *mockEmployeeRepo {
	m := &mockEmployeeRepo{items: make(map[string]*entity.Employee)}
	for _, e := range list {
		m.items[e.NF] = e
	}
	return m
}

func (m *mockEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	if _, ok := m.items[e.NF]; ok {
		return domain.ErrEmployeeExists
	}
	m.items[e.NF] = e
	return nil
}

func (m *mockEmployeeRepo) GetByNF(_ context.Context, nf string) (*entity.Employee, error) {
	if e, ok := m.items[nf]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	if _, ok := m.items[e.NF]; !ok {
		return domain.ErrEmployeeNotFound
	}
	m.items[e.NF] = e
	return nil
}

// List devuelve en orden de NF: el orden por nombre es responsabilidad del caso de uso.
func (m *mockEmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(m.items))
	for _, e := range m.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NF < out[j].NF })
	return out, nil
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int, error) { return len(m.items), nil }

func (m *mockEmployeeRepo) Delete(_ context.Context, nf string) error {
	delete(m.items, nf)
	return nil
}

// ── Mock CreditRecordRepository ──

type mockCreditRepo struct {
	items []*entity.CreditRecord
}

func (m *mockCreditRepo) Create(_ context.Context, r *entity.CreditRecord) error {
	cp := *r
	m.items = append(m.items, &cp)
	return nil
}

func (m *mockCreditRepo) GetByID(_ context.Context, id string) (*entity.CreditRecord, error) {
	for _, r := range m.items {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockCreditRepo) Update(_ context.Context, r *entity.CreditRecord) error {
	for i, x := range m.items {
		if x.ID == r.ID {
			cp := *r
			m.items[i] = &cp
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (m *mockCreditRepo) Delete(_ context.Context, id string) error {
	for i, x := range m.items {
		if x.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (m *mockCreditRepo) List(_ context.Context) ([]*entity.CreditRecord, error) {
	return m.items, nil
}

func (m *mockCreditRepo) ListByEmployee(_ context.Context, nf string) ([]*entity.CreditRecord, error) {
	var out []*entity.CreditRecord
	for _, r := range m.items {
		if r.EmployeeNF == nf {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockCreditRepo) ListWithDeadline(_ context.Context) ([]*entity.CreditRecord, error) {
	var out []*entity.CreditRecord
	for _, r := range m.items {
		if r.Deadline != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

// ── Mock UserRepository ──

type mockUserRepo struct {
	items map[string]*entity.User // por username
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{items: make(map[string]*entity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.items[u.Username]; ok {
		return domain.ErrDuplicate
	}
	m.items[u.Username] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return m.items[username], nil
}

func (m *mockUserRepo) Update(_ context.Context, u *entity.User) error {
	m.items[u.Username] = u
	return nil
}

func (m *mockUserRepo) List(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.items))
	for _, u := range m.items {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	n := 0
	for _, u := range m.items {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (m *mockUserRepo) ListAlertRecipients(context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.items {
		if u.ReceivesAlerts() {
			out = append(out, u)
		}
	}
	return out, nil
}
