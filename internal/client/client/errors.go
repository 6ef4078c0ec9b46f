package client

import (
	"errors"

	"github.com/dmitrijs2005/palace/internal/common"
)

var (
	ErrUnavailable  = errors.New("server is not responding")
	ErrUnauthorized = common.ErrUnauthorized
)
