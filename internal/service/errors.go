package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/soltracker/internal/ledger"
)

// toConnectError maps engine errors onto Connect codes. Rejections keep their
// message so the client can show it to the user.
func toConnectError(err error) *connect.Error {
	var (
		validationErr *ledger.ValidationError
		notFoundErr   *ledger.NotFoundError
		overpayErr    *ledger.OverpaymentError
		recipientErr  *ledger.InvalidRecipientError
		collectionErr *ledger.CollectionIncompleteError
		inactiveErr   *ledger.NotActiveError
	)
	switch {
	case errors.As(err, &validationErr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.As(err, &notFoundErr):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.As(err, &overpayErr),
		errors.As(err, &recipientErr),
		errors.As(err, &collectionErr),
		errors.As(err, &inactiveErr):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// rejectionReason labels a rejected operation for metrics. Internal failures
// are not rejections and return "".
func rejectionReason(err error) string {
	var (
		validationErr *ledger.ValidationError
		notFoundErr   *ledger.NotFoundError
		overpayErr    *ledger.OverpaymentError
		recipientErr  *ledger.InvalidRecipientError
		collectionErr *ledger.CollectionIncompleteError
		inactiveErr   *ledger.NotActiveError
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &notFoundErr):
		return "not_found"
	case errors.As(err, &overpayErr):
		return "overpayment"
	case errors.As(err, &recipientErr):
		return "invalid_recipient"
	case errors.As(err, &collectionErr):
		return "collection_incomplete"
	case errors.As(err, &inactiveErr):
		return "not_active"
	}
	return ""
}
