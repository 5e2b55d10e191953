package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// memTable is an in-memory ordered table shared by the fake repositories
// ---------------------------------------------------------------------------

type memTable[T any] struct {
	rows     []T
	seq      int
	id       func(T) string
	setID    func(T, string)
	order    func(T) int
	setOrder func(T, int)
	active   func(T) bool
	clone    func(T) T
	// err, when set, is returned from every call
	err error
	// moves counts updates that asked for a position change
	moves int
}

func (m *memTable[T]) list(activeOnly bool, keep func(T) bool) ([]T, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []T
	for _, r := range m.rows {
		if activeOnly && !m.active(r) {
			continue
		}
		if keep != nil && !keep(r) {
			continue
		}
		out = append(out, m.clone(r))
	}
	sort.SliceStable(out, func(i, j int) bool { return m.order(out[i]) < m.order(out[j]) })
	return out, nil
}

func (m *memTable[T]) get(id string) (T, error) {
	var zero T
	if m.err != nil {
		return zero, m.err
	}
	for _, r := range m.rows {
		if m.id(r) == id {
			return m.clone(r), nil
		}
	}
	return zero, repository.ErrNotFound
}

func (m *memTable[T]) count(keep func(T) bool) int {
	n := 0
	for _, r := range m.rows {
		if keep == nil || keep(r) {
			n++
		}
	}
	return n
}

func (m *memTable[T]) create(v T, scope func(T) bool) error {
	if m.err != nil {
		return m.err
	}
	m.seq++
	m.setID(v, fmt.Sprintf("00000000-0000-0000-0000-%012d", m.seq))
	n := m.count(scope)
	pos := m.order(v)
	if pos <= 0 || pos > n {
		pos = n + 1
	} else {
		for _, r := range m.rows {
			if (scope == nil || scope(r)) && m.order(r) >= pos {
				m.setOrder(r, m.order(r)+1)
			}
		}
	}
	m.setOrder(v, pos)
	m.rows = append(m.rows, m.clone(v))
	return nil
}

func (m *memTable[T]) update(v T, reposition bool) error {
	if m.err != nil {
		return m.err
	}
	for i, r := range m.rows {
		if m.id(r) == m.id(v) {
			if reposition {
				m.moves++
			} else {
				m.setOrder(v, m.order(r))
			}
			m.rows[i] = m.clone(v)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memTable[T]) delete(id string) error {
	if m.err != nil {
		return m.err
	}
	for i, r := range m.rows {
		if m.id(r) == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memTable[T]) reorder(ids []string) error {
	if m.err != nil {
		return m.err
	}
	for i, id := range ids {
		found := false
		for _, r := range m.rows {
			if m.id(r) == id {
				m.setOrder(r, i+1)
				found = true
			}
		}
		if !found {
			return repository.ErrNotFound
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Hero slides
// ---------------------------------------------------------------------------

type memHeroSlideRepo struct{ memTable[*model.HeroSlide] }

func newMemHeroSlideRepo() *memHeroSlideRepo {
	return &memHeroSlideRepo{memTable[*model.HeroSlide]{
		id:       func(s *model.HeroSlide) string { return s.ID },
		setID:    func(s *model.HeroSlide, id string) { s.ID = id },
		order:    func(s *model.HeroSlide) int { return s.Order },
		setOrder: func(s *model.HeroSlide, o int) { s.Order = o },
		active:   func(s *model.HeroSlide) bool { return s.IsActive },
		clone:    func(s *model.HeroSlide) *model.HeroSlide { c := *s; return &c },
	}}
}

func (r *memHeroSlideRepo) List(_ context.Context, activeOnly bool) ([]*model.HeroSlide, error) {
	return r.list(activeOnly, nil)
}
func (r *memHeroSlideRepo) GetByID(_ context.Context, id string) (*model.HeroSlide, error) {
	return r.get(id)
}
func (r *memHeroSlideRepo) Create(_ context.Context, s *model.HeroSlide) error {
	s.CreatedAt, s.UpdatedAt = time.Now(), time.Now()
	return r.create(s, nil)
}
func (r *memHeroSlideRepo) Update(_ context.Context, s *model.HeroSlide, reposition bool) error {
	return r.update(s, reposition)
}
func (r *memHeroSlideRepo) Delete(_ context.Context, id string) error { return r.delete(id) }
func (r *memHeroSlideRepo) Reorder(_ context.Context, ids []string) error { return r.reorder(ids) }
func (r *memHeroSlideRepo) CountActive(context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.count(r.active), nil
}

// ---------------------------------------------------------------------------
// Team members
// ---------------------------------------------------------------------------

type memTeamMemberRepo struct{ memTable[*model.TeamMember] }

func newMemTeamMemberRepo() *memTeamMemberRepo {
	return &memTeamMemberRepo{memTable[*model.TeamMember]{
		id:       func(m *model.TeamMember) string { return m.ID },
		setID:    func(m *model.TeamMember, id string) { m.ID = id },
		order:    func(m *model.TeamMember) int { return m.Order },
		setOrder: func(m *model.TeamMember, o int) { m.Order = o },
		active:   func(m *model.TeamMember) bool { return m.IsActive },
		clone:    func(m *model.TeamMember) *model.TeamMember { c := *m; return &c },
	}}
}

func (r *memTeamMemberRepo) List(_ context.Context, activeOnly bool) ([]*model.TeamMember, error) {
	return r.list(activeOnly, nil)
}
func (r *memTeamMemberRepo) GetByID(_ context.Context, id string) (*model.TeamMember, error) {
	return r.get(id)
}
func (r *memTeamMemberRepo) Create(_ context.Context, m *model.TeamMember) error {
	return r.create(m, nil)
}
func (r *memTeamMemberRepo) Update(_ context.Context, m *model.TeamMember, reposition bool) error {
	return r.update(m, reposition)
}
func (r *memTeamMemberRepo) Delete(_ context.Context, id string) error { return r.delete(id) }
func (r *memTeamMemberRepo) Reorder(_ context.Context, ids []string) error { return r.reorder(ids) }
func (r *memTeamMemberRepo) CountActive(context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.count(r.active), nil
}

// ---------------------------------------------------------------------------
// Services, items, benefits
// ---------------------------------------------------------------------------

type memServiceRepo struct {
	memTable[*model.Service]
	items    *memServiceItemRepo
	benefits *memServiceBenefitRepo
}

func newMemCatalog() (*memServiceRepo, *memServiceItemRepo, *memServiceBenefitRepo) {
	items := &memServiceItemRepo{memTable[*model.ServiceItem]{
		id:       func(i *model.ServiceItem) string { return i.ID },
		setID:    func(i *model.ServiceItem, id string) { i.ID = id },
		order:    func(i *model.ServiceItem) int { return i.Order },
		setOrder: func(i *model.ServiceItem, o int) { i.Order = o },
		active:   func(i *model.ServiceItem) bool { return i.IsActive },
		clone:    func(i *model.ServiceItem) *model.ServiceItem { c := *i; return &c },
	}}
	benefits := &memServiceBenefitRepo{memTable[*model.ServiceBenefit]{
		id:       func(b *model.ServiceBenefit) string { return b.ID },
		setID:    func(b *model.ServiceBenefit, id string) { b.ID = id },
		order:    func(b *model.ServiceBenefit) int { return b.Order },
		setOrder: func(b *model.ServiceBenefit, o int) { b.Order = o },
		active:   func(b *model.ServiceBenefit) bool { return b.IsActive },
		clone:    func(b *model.ServiceBenefit) *model.ServiceBenefit { c := *b; return &c },
	}}
	services := &memServiceRepo{
		memTable: memTable[*model.Service]{
			id:       func(s *model.Service) string { return s.ID },
			setID:    func(s *model.Service, id string) { s.ID = id },
			order:    func(s *model.Service) int { return s.Order },
			setOrder: func(s *model.Service, o int) { s.Order = o },
			active:   func(s *model.Service) bool { return s.IsActive },
			clone: func(s *model.Service) *model.Service {
				c := *s
				c.Items, c.Benefits = nil, nil
				return &c
			},
		},
		items:    items,
		benefits: benefits,
	}
	// Distinct ID ranges so a child id never collides with a service id.
	items.seq = 100000
	benefits.seq = 200000
	return services, items, benefits
}

func (r *memServiceRepo) List(_ context.Context, activeOnly bool) ([]*model.Service, error) {
	return r.list(activeOnly, nil)
}
func (r *memServiceRepo) GetByID(_ context.Context, id string) (*model.Service, error) {
	return r.get(id)
}
func (r *memServiceRepo) GetBySlug(_ context.Context, slug string) (*model.Service, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, s := range r.rows {
		if s.Slug == slug {
			return r.clone(s), nil
		}
	}
	return nil, repository.ErrNotFound
}
func (r *memServiceRepo) slugTaken(slug, exceptID string) bool {
	for _, s := range r.rows {
		if s.Slug == slug && s.ID != exceptID {
			return true
		}
	}
	return false
}
func (r *memServiceRepo) Create(_ context.Context, s *model.Service) error {
	if r.slugTaken(s.Slug, "") {
		return repository.ErrConflict
	}
	return r.create(s, nil)
}
func (r *memServiceRepo) Update(_ context.Context, s *model.Service, reposition bool) error {
	if r.slugTaken(s.Slug, s.ID) {
		return repository.ErrConflict
	}
	return r.update(s, reposition)
}
func (r *memServiceRepo) Delete(_ context.Context, id string) error {
	if err := r.delete(id); err != nil {
		return err
	}
	r.items.rows = filterRows(r.items.rows, func(i *model.ServiceItem) bool { return i.ServiceID != id })
	r.benefits.rows = filterRows(r.benefits.rows, func(b *model.ServiceBenefit) bool { return b.ServiceID != id })
	return nil
}
func (r *memServiceRepo) Reorder(_ context.Context, ids []string) error { return r.reorder(ids) }
func (r *memServiceRepo) CountActive(context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.count(r.active), nil
}

func filterRows[T any](rows []T, keep func(T) bool) []T {
	var out []T
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

type memServiceItemRepo struct{ memTable[*model.ServiceItem] }

func (r *memServiceItemRepo) ListByService(_ context.Context, serviceID string, activeOnly bool) ([]*model.ServiceItem, error) {
	return r.list(activeOnly, func(i *model.ServiceItem) bool { return i.ServiceID == serviceID })
}
func (r *memServiceItemRepo) GetByID(_ context.Context, id string) (*model.ServiceItem, error) {
	return r.get(id)
}
func (r *memServiceItemRepo) Create(_ context.Context, i *model.ServiceItem) error {
	return r.create(i, func(o *model.ServiceItem) bool { return o.ServiceID == i.ServiceID })
}
func (r *memServiceItemRepo) Update(_ context.Context, i *model.ServiceItem, reposition bool) error {
	return r.update(i, reposition)
}
func (r *memServiceItemRepo) Delete(_ context.Context, id string) error { return r.delete(id) }
func (r *memServiceItemRepo) Reorder(_ context.Context, _ string, ids []string) error {
	return r.reorder(ids)
}

type memServiceBenefitRepo struct{ memTable[*model.ServiceBenefit] }

func (r *memServiceBenefitRepo) ListByService(_ context.Context, serviceID string, activeOnly bool) ([]*model.ServiceBenefit, error) {
	return r.list(activeOnly, func(b *model.ServiceBenefit) bool { return b.ServiceID == serviceID })
}
func (r *memServiceBenefitRepo) GetByID(_ context.Context, id string) (*model.ServiceBenefit, error) {
	return r.get(id)
}
func (r *memServiceBenefitRepo) Create(_ context.Context, b *model.ServiceBenefit) error {
	return r.create(b, func(o *model.ServiceBenefit) bool { return o.ServiceID == b.ServiceID })
}
func (r *memServiceBenefitRepo) Update(_ context.Context, b *model.ServiceBenefit, reposition bool) error {
	return r.update(b, reposition)
}
func (r *memServiceBenefitRepo) Delete(_ context.Context, id string) error { return r.delete(id) }
func (r *memServiceBenefitRepo) Reorder(_ context.Context, _ string, ids []string) error {
	return r.reorder(ids)
}

// ---------------------------------------------------------------------------
// Contact messages
// ---------------------------------------------------------------------------

type memContactRepo struct {
	rows []*model.ContactMessage
	seq  int
	err  error
}

func (r *memContactRepo) Save(_ context.Context, msg *model.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	msg.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", r.seq)
	c := *msg
	r.rows = append(r.rows, &c)
	return nil
}

func (r *memContactRepo) GetByID(_ context.Context, id string) (*model.ContactMessage, error) {
	for _, m := range r.rows {
		if m.ID == id {
			c := *m
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memContactRepo) List(_ context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	var out []*model.ContactMessage
	for i := len(r.rows) - 1; i >= 0; i-- {
		m := r.rows[i]
		if opts.Status != "" && opts.Status != "all" && string(m.Status) != opts.Status {
			continue
		}
		c := *m
		out = append(out, &c)
	}
	if opts.Offset < len(out) {
		out = out[opts.Offset:]
	} else {
		out = nil
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *memContactRepo) Update(_ context.Context, msg *model.ContactMessage) error {
	for i, m := range r.rows {
		if m.ID == msg.ID {
			c := *msg
			r.rows[i] = &c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memContactRepo) MarkRead(_ context.Context, id string) (bool, error) {
	for _, m := range r.rows {
		if m.ID == id && m.Status == model.MessageNew {
			m.Status = model.MessageRead
			return true, nil
		}
	}
	return false, nil
}

func (r *memContactRepo) Delete(_ context.Context, id string) error {
	for i, m := range r.rows {
		if m.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memContactRepo) CountByStatus(_ context.Context, status model.MessageStatus) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n := 0
	for _, m := range r.rows {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Compile-time checks
// ---------------------------------------------------------------------------

var (
	_ repository.HeroSlideRepository      = (*memHeroSlideRepo)(nil)
	_ repository.TeamMemberRepository     = (*memTeamMemberRepo)(nil)
	_ repository.ServiceRepository        = (*memServiceRepo)(nil)
	_ repository.ServiceItemRepository    = (*memServiceItemRepo)(nil)
	_ repository.ServiceBenefitRepository = (*memServiceBenefitRepo)(nil)
	_ repository.ContactRepository        = (*memContactRepo)(nil)
)
