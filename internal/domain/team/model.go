package team

import (
	"context"
	"fmt"
)

// Ref identifies a club as embedded in upstream payloads.
type Ref struct {
	ID   int
	Name string
	Logo string
}

func (r Ref) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("team id must be positive")
	}
	if r.Name == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}

// Info is the club profile from the teams endpoint.
type Info struct {
	Team    Ref
	Code    string
	Country string
	Founded int
	Venue   Venue
}

type Venue struct {
	Name     string
	City     string
	Capacity int
}

// Source reads club profiles from the upstream statistics provider.
type Source interface {
	GetInfo(ctx context.Context, teamID int) (Info, bool, error)
}
