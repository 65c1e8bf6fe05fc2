package repositories

import (
	"encoding/json"
	"fmt"

	"meet-lab/contract"
	"meet-lab/domain"
	"meet-lab/errors"
)

const MeetingKeyPrefix = "meeting_"

type IMeetingRepository interface {
	Save(meeting domain.Meeting) error
	FindByCode(code domain.MeetingCode) (domain.Meeting, error)
}

type MeetingRepository struct {
	storage contract.LocalStorage
}

func NewMeetingRepository(storage contract.LocalStorage) *MeetingRepository {
	return &MeetingRepository{storage: storage}
}

func MeetingKey(code domain.MeetingCode) string {
	return MeetingKeyPrefix + code.String()
}

func (r *MeetingRepository) Save(meeting domain.Meeting) error {
	data, err := json.Marshal(meeting)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.storage.SetItem(MeetingKey(meeting.Code), string(data))
}

// FindByCode returns ErrMeetingNotFound for unknown codes.
func (r *MeetingRepository) FindByCode(code domain.MeetingCode) (domain.Meeting, error) {
	data, ok, err := r.storage.GetItem(MeetingKey(code))
	if err != nil {
		return domain.Meeting{}, err
	}
	if !ok {
		return domain.Meeting{}, errors.ErrMeetingNotFound
	}
	var meeting domain.Meeting
	if err = json.Unmarshal([]byte(data), &meeting); err != nil {
		return domain.Meeting{}, fmt.Errorf("%w: %s: %v", errors.ErrStorageRead, MeetingKey(code), err)
	}
	return meeting, nil
}
