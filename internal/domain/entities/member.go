package entities

import (
	"errors"
	"time"
)

const (
	MaxEmailLength    = 100
	MaxNicknameLength = 30
)

type Member struct {
	Id        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Password  string
	Nickname  string
}

// NewMember builds an unsaved member. The id is assigned by the store on
// insert; the password is stored exactly as given.
func NewMember(email, password, nickname string) *Member {
	now := time.Now()
	return &Member{
		CreatedAt: now,
		UpdatedAt: now,
		Email:     email,
		Password:  password,
		Nickname:  nickname,
	}
}

func (m *Member) validate() error {
	if m.Email == "" {
		return errors.New("email must not be empty")
	}
	if len(m.Email) > MaxEmailLength {
		return errors.New("email must be at most 100 characters")
	}
	if m.Password == "" {
		return errors.New("password must not be empty")
	}
	if m.Nickname == "" {
		return errors.New("nickname must not be empty")
	}
	if len(m.Nickname) > MaxNicknameLength {
		return errors.New("nickname must be at most 30 characters")
	}
	return nil
}

func (m *Member) UpdateNickname(nickname string) {
	m.Nickname = nickname
	m.UpdatedAt = time.Now()
}
