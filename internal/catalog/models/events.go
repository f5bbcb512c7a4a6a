package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}

type VideoCreated struct {
	eventID    uuid.UUID
	videoID    uuid.UUID
	uploadedBy uuid.UUID
	title      string
	occurredAt time.Time
}

func NewVideoCreated(videoID, uploadedBy uuid.UUID, title string) *VideoCreated {
	return &VideoCreated{
		eventID:    uuid.New(),
		videoID:    videoID,
		uploadedBy: uploadedBy,
		title:      title,
		occurredAt: time.Now(),
	}
}

func (e *VideoCreated) EventID() uuid.UUID     { return e.eventID }
func (e *VideoCreated) EventType() string      { return "VideoCreated" }
func (e *VideoCreated) AggregateID() uuid.UUID { return e.videoID }
func (e *VideoCreated) OccurredAt() time.Time  { return e.occurredAt }

func (e *VideoCreated) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		VideoID    uuid.UUID `json:"video_id"`
		UploadedBy uuid.UUID `json:"uploaded_by"`
		Title      string    `json:"title"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.eventID,
		VideoID:    e.videoID,
		UploadedBy: e.uploadedBy,
		Title:      e.title,
		OccurredAt: e.occurredAt,
	})
}

type VideoUpdated struct {
	eventID    uuid.UUID
	videoID    uuid.UUID
	occurredAt time.Time
}

func NewVideoUpdated(videoID uuid.UUID) *VideoUpdated {
	return &VideoUpdated{
		eventID:    uuid.New(),
		videoID:    videoID,
		occurredAt: time.Now(),
	}
}

func (e *VideoUpdated) EventID() uuid.UUID     { return e.eventID }
func (e *VideoUpdated) EventType() string      { return "VideoUpdated" }
func (e *VideoUpdated) AggregateID() uuid.UUID { return e.videoID }
func (e *VideoUpdated) OccurredAt() time.Time  { return e.occurredAt }

func (e *VideoUpdated) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		VideoID    uuid.UUID `json:"video_id"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.eventID,
		VideoID:    e.videoID,
		OccurredAt: e.occurredAt,
	})
}

type VideoDeleted struct {
	eventID    uuid.UUID
	videoID    uuid.UUID
	occurredAt time.Time
}

func NewVideoDeleted(videoID uuid.UUID) *VideoDeleted {
	return &VideoDeleted{
		eventID:    uuid.New(),
		videoID:    videoID,
		occurredAt: time.Now(),
	}
}

func (e *VideoDeleted) EventID() uuid.UUID     { return e.eventID }
func (e *VideoDeleted) EventType() string      { return "VideoDeleted" }
func (e *VideoDeleted) AggregateID() uuid.UUID { return e.videoID }
func (e *VideoDeleted) OccurredAt() time.Time  { return e.occurredAt }

func (e *VideoDeleted) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		VideoID    uuid.UUID `json:"video_id"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.eventID,
		VideoID:    e.videoID,
		OccurredAt: e.occurredAt,
	})
}
