package events

import (
	"context"

	"github.com/luv2code/cruddemo/pkg/models"
	"github.com/luv2code/cruddemo/pkg/store"
	"github.com/rs/zerolog"
)

// PublishingStore publishes an event after each successful write of the
// wrapped store. A failed publish is logged and the write still succeeds.
type PublishingStore struct {
	store.Store
	publisher Publisher
	log       zerolog.Logger
}

var _ store.Store = (*PublishingStore)(nil)

func NewPublishingStore(s store.Store, publisher Publisher, log zerolog.Logger) *PublishingStore {
	return &PublishingStore{Store: s, publisher: publisher, log: log}
}

func (s *PublishingStore) publish(ctx context.Context, event Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).
			Str("entity", event.Entity).
			Str("action", string(event.Action)).
			Int("entity_id", event.EntityID).
			Msg("failed to publish event")
	}
}

func (s *PublishingStore) SaveStudent(ctx context.Context, student *models.Student) error {
	if err := s.Store.SaveStudent(ctx, student); err != nil {
		return err
	}
	s.publish(ctx, NewEvent(models.StudentTable, ActionSaved, student.ID.Int()))
	return nil
}

func (s *PublishingStore) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.Store.UpdateStudent(ctx, student); err != nil {
		return err
	}
	s.publish(ctx, NewEvent(models.StudentTable, ActionUpdated, student.ID.Int()))
	return nil
}

func (s *PublishingStore) DeleteStudent(ctx context.Context, id models.StudentID) error {
	if err := s.Store.DeleteStudent(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, NewEvent(models.StudentTable, ActionDeleted, id.Int()))
	return nil
}

func (s *PublishingStore) DeleteAllStudents(ctx context.Context) (int64, error) {
	n, err := s.Store.DeleteAllStudents(ctx)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, NewEvent(models.StudentTable, ActionDeletedAll, 0))
	return n, nil
}

func (s *PublishingStore) SaveEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	saved, err := s.Store.SaveEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}
	// The merge kept the caller's ID only if it updated an existing row.
	action := ActionSaved
	if !employee.ID.IsZero() && saved.ID == employee.ID {
		action = ActionUpdated
	}
	s.publish(ctx, NewEvent(models.EmployeeTable, action, saved.ID.Int()))
	return saved, nil
}

func (s *PublishingStore) DeleteEmployee(ctx context.Context, id models.EmployeeID) error {
	if err := s.Store.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, NewEvent(models.EmployeeTable, ActionDeleted, id.Int()))
	return nil
}
