package entities

import (
	"errors"
	"time"
)

// Follow is a directed edge in the follow graph. The ordered pair
// (FollowerId, FollowedId) is the identity; there is no surrogate id.
type Follow struct {
	FollowerId int64
	FollowedId int64
	CreatedAt  time.Time
}

func NewFollow(followerId, followedId int64) *Follow {
	return &Follow{
		FollowerId: followerId,
		FollowedId: followedId,
		CreatedAt:  time.Now(),
	}
}

func (f *Follow) validate() error {
	if f.FollowerId <= 0 || f.FollowedId <= 0 {
		return errors.New("member ids must be positive")
	}
	if f.FollowerId == f.FollowedId {
		return errors.New("follower and followed must differ")
	}
	return nil
}

type ValidatedFollow struct {
	*Follow
}

func NewValidatedFollow(follow *Follow) (*ValidatedFollow, error) {
	if err := follow.validate(); err != nil {
		return nil, err
	}

	return &ValidatedFollow{Follow: follow}, nil
}
