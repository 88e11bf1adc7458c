package assignment

import "github.com/pkg/errors"

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Reset() {
	svc.store.Reset()
}

func (svc *Service) QueryAll() []Assignment {
	return svc.store.All()
}

func (svc *Service) GetByID(id int) (Assignment, error) {
	return svc.store.Get(id)
}

// Create stores a new Assignment out of a validated Payload.
func (svc *Service) Create(p Payload) (Assignment, error) {
	a, err := p.Assignment()
	if err != nil {
		return Assignment{}, err
	}
	return svc.store.Create(a), nil
}

// Update fully replaces the Assignment with the validated Payload.
func (svc *Service) Update(id int, p Payload) (Assignment, error) {
	a, err := p.Assignment()
	if err != nil {
		return Assignment{}, err
	}
	return svc.store.Update(id, a)
}

// PartialUpdate merges the supplied fields of a (partially) validated Payload onto the existing
// Assignment, then replaces it.
func (svc *Service) PartialUpdate(existing Assignment, p Payload) (Assignment, error) {
	merged, err := p.Apply(existing)
	if err != nil {
		return Assignment{}, errors.Wrap(err, "merging payload")
	}
	return svc.store.Update(existing.ID, merged)
}

func (svc *Service) Delete(id int) bool {
	return svc.store.Delete(id)
}
