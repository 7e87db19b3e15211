package httpx

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// ParseJobListOptions reads listing filters, sort and pagination from the
// query string. Unknown sort and status values are left for the service to
// reject; malformed numbers and enums are rejected here.
func ParseJobListOptions(q url.Values) (model.JobListOptions, error) {
	opts := model.JobListOptions{
		Sort: model.JobSort(strings.ToLower(strings.TrimSpace(q.Get("sort")))),
	}

	var err error
	if opts.Page, err = intParam(q, "page"); err != nil {
		return opts, err
	}
	if opts.Limit, err = intParam(q, "limit"); err != nil {
		return opts, err
	}

	f := &opts.Filters
	if v := strParam(q, "status"); v != nil {
		s := model.JobStatus(*v)
		f.Status = &s
	}
	f.JobType = strParam(q, "job_type")
	f.Division = strParam(q, "division")
	f.District = strParam(q, "district")
	f.Upazila = strParam(q, "upazila")
	f.Search = strParam(q, "q")
	f.CreatedBy = strParam(q, "created_by")

	if v := strParam(q, "hiring_type"); v != nil {
		h := model.HiringType(*v)
		if !h.Valid() {
			return opts, apperrors.ValidationField("hiring_type", "hiring type must be bidding or instant")
		}
		f.HiringType = &h
	}
	if v := strParam(q, "payment_method"); v != nil {
		m := model.PaymentMethod(*v)
		if !m.Valid() {
			return opts, apperrors.ValidationField("payment_method", "payment method must be fixed or hourly")
		}
		f.PaymentMethod = &m
	}
	if f.MinPay, err = floatParam(q, "min_pay"); err != nil {
		return opts, err
	}
	if f.MaxPay, err = floatParam(q, "max_pay"); err != nil {
		return opts, err
	}
	return opts, nil
}

func strParam(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func intParam(q url.Values, key string) (int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperrors.ValidationField(key, key+" must be an integer")
	}
	return i, nil
}

func floatParam(q url.Values, key string) (*float64, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return nil, apperrors.ValidationField(key, key+" must be a non-negative number")
	}
	return &f, nil
}
