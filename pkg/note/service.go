package note

import (
	"context"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/stream"
)

const (
	MessageCreated = "note.created"
	MessageUpdated = "note.updated"
	MessageDeleted = "note.deleted"
)

func NewService(repository Repository, publisher publisher) Service {
	return Service{
		repository: repository,
		publisher:  publisher,
	}
}

type publisher interface {
	Publish(message stream.Message) int
}

type Service struct {
	repository Repository
	publisher  publisher
}

// DeletedNote is published when a note is deleted.
type DeletedNote struct {
	ID uint `json:"id"`
}

func (s Service) FindAll(ctx context.Context) ([]model.Note, error) {
	return s.repository.FindAll(ctx)
}

func (s Service) FindByID(ctx context.Context, id uint) (model.Note, error) {
	return s.repository.FindByID(ctx, id)
}

func (s Service) FindAllByDate(ctx context.Context, date model.Date) ([]model.Note, error) {
	return s.repository.FindByDate(ctx, date)
}

// FindByDate returns the note written for date. If there are several the one created first wins.
func (s Service) FindByDate(ctx context.Context, date model.Date) (model.Note, error) {
	notes, err := s.repository.FindByDate(ctx, date)
	if err != nil {
		return model.Note{}, err
	}
	if len(notes) == 0 {
		return model.Note{}, errdef.NewNotFound("note not found by date: %s", date)
	}
	return notes[0], nil
}

func (s Service) Create(ctx context.Context, note model.Note) (model.Note, error) {
	note.ID = 0
	if err := s.repository.Create(ctx, &note); err != nil {
		return model.Note{}, err
	}

	s.publisher.Publish(stream.Message{Type: MessageCreated, Data: note})
	return note, nil
}

func (s Service) Update(ctx context.Context, id uint, note model.Note) (model.Note, error) {
	updated, err := s.repository.Update(ctx, id, note)
	if err != nil {
		return model.Note{}, err
	}

	s.publisher.Publish(stream.Message{Type: MessageUpdated, Data: updated})
	return updated, nil
}

func (s Service) Delete(ctx context.Context, id uint) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(stream.Message{Type: MessageDeleted, Data: DeletedNote{ID: id}})
	return nil
}
