// Package models holds the server-side domain types for user accounts.
package models

import (
	"fmt"
	"slices"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Region is one of the fixed administrative regions a user can follow.
type Region string

const (
	RegionAhafo        Region = "ahafo"
	RegionAshanti      Region = "ashanti"
	RegionBono         Region = "bono"
	RegionBonoEast     Region = "bono_east"
	RegionCentral      Region = "central"
	RegionEastern      Region = "eastern"
	RegionGreaterAccra Region = "greater_accra"
	RegionNorthEast    Region = "north_east"
	RegionNorthern     Region = "northern"
	RegionOti          Region = "oti"
	RegionSavannah     Region = "savannah"
	RegionUpperEast    Region = "upper_east"
	RegionUpperWest    Region = "upper_west"
	RegionVolta        Region = "volta"
	RegionWestern      Region = "western"
	RegionWesternNorth Region = "western_north"
)

var allRegions = []Region{
	RegionAhafo, RegionAshanti, RegionBono, RegionBonoEast, RegionCentral,
	RegionEastern, RegionGreaterAccra, RegionNorthEast, RegionNorthern,
	RegionOti, RegionSavannah, RegionUpperEast, RegionUpperWest, RegionVolta,
	RegionWestern, RegionWesternNorth,
}

// AllRegions returns the region enumeration in a stable order.
func AllRegions() []Region {
	return slices.Clone(allRegions)
}

func (r Region) Valid() bool {
	return slices.Contains(allRegions, r)
}

// NormalizeRegions validates regions and returns them deduplicated and
// sorted. A nil or empty input yields an empty, non-nil slice.
func NormalizeRegions(regions []Region) ([]Region, error) {
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		if !r.Valid() {
			return nil, fmt.Errorf("unknown region %q", r)
		}
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out, nil
}

// Account is a persisted user record. It is owned by the user store;
// callers receive copies.
type Account struct {
	ID                string
	Email             string
	FirstName         string
	LastName          string
	Gender            Gender
	Password          string
	SubscribedRegions []Region
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Clone returns a deep copy of a.
func (a *Account) Clone() *Account {
	c := *a
	c.SubscribedRegions = slices.Clone(a.SubscribedRegions)
	if c.SubscribedRegions == nil {
		c.SubscribedRegions = []Region{}
	}
	return &c
}

// Public returns the view of a that is safe to hand to clients.
func (a *Account) Public() PublicUser {
	regions := slices.Clone(a.SubscribedRegions)
	if regions == nil {
		regions = []Region{}
	}
	return PublicUser{
		ID:                a.ID,
		Email:             a.Email,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Gender:            a.Gender,
		SubscribedRegions: regions,
	}
}

// PublicUser is an account without its credential material.
type PublicUser struct {
	ID                string
	Email             string
	FirstName         string
	LastName          string
	Gender            Gender
	SubscribedRegions []Region
}

// AccountUpdate lists the fields to change; nil fields are left as is.
type AccountUpdate struct {
	Email             *string
	FirstName         *string
	LastName          *string
	Gender            *Gender
	Password          *string
	SubscribedRegions *[]Region
}

// Empty reports whether u changes nothing.
func (u AccountUpdate) Empty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil &&
		u.Gender == nil && u.Password == nil && u.SubscribedRegions == nil
}

// Apply merges u into a copy of a and returns it. Timestamps are untouched.
func (u AccountUpdate) Apply(a *Account) *Account {
	c := a.Clone()
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.FirstName != nil {
		c.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		c.LastName = *u.LastName
	}
	if u.Gender != nil {
		c.Gender = *u.Gender
	}
	if u.Password != nil {
		c.Password = *u.Password
	}
	if u.SubscribedRegions != nil {
		c.SubscribedRegions = slices.Clone(*u.SubscribedRegions)
	}
	return c
}
