package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/deliveryoption/internal/otel"
	"github.com/Alturino/storefront/deliveryoption/pkg/request"
	"github.com/Alturino/storefront/deliveryoption/pkg/response"
	inErrors "github.com/Alturino/storefront/internal/errors"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/repository"
)

type DeliveryOptionService struct {
	store repository.Store
	now   func() time.Time
}

func NewDeliveryOptionService(store repository.Store, now func() time.Time) *DeliveryOptionService {
	if now == nil {
		now = time.Now
	}
	return &DeliveryOptionService{store: store, now: now}
}

// EstimatedDeliveryTime is now plus the option's delivery days.
func EstimatedDeliveryTime(now time.Time, deliveryDays int32) time.Time {
	return now.Add(time.Duration(deliveryDays) * 24 * time.Hour)
}

func (svc *DeliveryOptionService) withEstimate(
	d response.DeliveryOption,
	now time.Time,
) response.DeliveryOption {
	ms := EstimatedDeliveryTime(now, d.DeliveryDays).UnixMilli()
	d.EstimatedDeliveryTimeMs = &ms
	return d
}

func (svc *DeliveryOptionService) FindDeliveryOptions(
	c context.Context,
	expandEstimate bool,
) ([]response.DeliveryOption, error) {
	c, span := otel.Tracer.Start(c, "DeliveryOptionService FindDeliveryOptions")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionService FindDeliveryOptions").
		Str(log.KeyProcess, "finding delivery options in database").
		Logger()

	logger.Trace().Msg("finding delivery options in database")
	rows, err := svc.store.FindDeliveryOptions(c)
	if err != nil {
		err = fmt.Errorf("failed finding delivery options with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int("count", len(rows)).Msg("found delivery options in database")

	now := svc.now()
	result := make([]response.DeliveryOption, 0, len(rows))
	for _, row := range rows {
		d := row.Response()
		if expandEstimate {
			d = svc.withEstimate(d, now)
		}
		result = append(result, d)
	}
	return result, nil
}

func (svc *DeliveryOptionService) FindDeliveryOptionById(
	c context.Context,
	id string,
	expandEstimate bool,
) (response.DeliveryOption, error) {
	c, span := otel.Tracer.Start(c, "DeliveryOptionService FindDeliveryOptionById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionService FindDeliveryOptionById").
		Str(log.KeyDeliveryOptionID, id).
		Str(log.KeyProcess, "finding delivery option in database").
		Logger()

	logger.Trace().Msg("finding delivery option in database")
	row, err := svc.store.FindDeliveryOptionById(c, id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf(
			"failed finding delivery option=%s with error=%w",
			id,
			inErrors.ErrDeliveryOptionNotFound,
		)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.DeliveryOption{}, err
	}
	if err != nil {
		err = fmt.Errorf("failed finding delivery option with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.DeliveryOption{}, err
	}
	logger.Info().Msg("found delivery option in database")

	d := row.Response()
	if expandEstimate {
		d = svc.withEstimate(d, svc.now())
	}
	return d, nil
}

func (svc *DeliveryOptionService) InsertDeliveryOption(
	c context.Context,
	param request.InsertDeliveryOption,
) (response.DeliveryOption, error) {
	c, span := otel.Tracer.Start(c, "DeliveryOptionService InsertDeliveryOption")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionService InsertDeliveryOption").
		Str(log.KeyDeliveryOptionID, param.ID).
		Str(log.KeyProcess, "inserting delivery option to database").
		Logger()

	logger.Trace().Msg("inserting delivery option to database")
	row, err := svc.store.InsertDeliveryOption(c, repository.InsertDeliveryOptionParams{
		ID:           param.ID,
		Label:        param.Label,
		DeliveryDays: param.DeliveryDays,
		PriceCents:   param.PriceCents,
	})
	if repository.IsUniqueViolation(err) {
		err = fmt.Errorf(
			"failed inserting delivery option=%s with error=%w",
			param.ID,
			inErrors.ErrDeliveryOptionAlreadyExist,
		)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.DeliveryOption{}, err
	}
	if err != nil {
		err = fmt.Errorf("failed inserting delivery option with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.DeliveryOption{}, err
	}
	logger.Info().Msg("inserted delivery option to database")

	return row.Response(), nil
}

func (svc *DeliveryOptionService) UpdateDeliveryOption(
	c context.Context,
	id string,
	param request.UpdateDeliveryOption,
) (response.DeliveryOption, error) {
	c, span := otel.Tracer.Start(c, "DeliveryOptionService UpdateDeliveryOption")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionService UpdateDeliveryOption").
		Str(log.KeyDeliveryOptionID, id).
		Str(log.KeyProcess, "updating delivery option in database").
		Logger()

	logger.Trace().Msg("updating delivery option in database")
	row, err := svc.store.UpdateDeliveryOption(c, repository.UpdateDeliveryOptionParams{
		ID:           id,
		Label:        param.Label,
		DeliveryDays: param.DeliveryDays,
		PriceCents:   param.PriceCents,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf(
			"failed updating delivery option=%s with error=%w",
			id,
			inErrors.ErrDeliveryOptionNotFound,
		)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.DeliveryOption{}, err
	}
	if err != nil {
		err = fmt.Errorf("failed updating delivery option with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.DeliveryOption{}, err
	}
	logger.Info().Msg("updated delivery option in database")

	return row.Response(), nil
}

func (svc *DeliveryOptionService) RemoveDeliveryOption(c context.Context, id string) error {
	c, span := otel.Tracer.Start(c, "DeliveryOptionService RemoveDeliveryOption")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "DeliveryOptionService RemoveDeliveryOption").
		Str(log.KeyDeliveryOptionID, id).
		Str(log.KeyProcess, "removing delivery option in database").
		Logger()

	logger.Trace().Msg("removing delivery option in database")
	_, err := svc.store.DeleteDeliveryOption(c, id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf(
			"failed removing delivery option=%s with error=%w",
			id,
			inErrors.ErrDeliveryOptionNotFound,
		)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return err
	}
	if err != nil {
		err = fmt.Errorf("failed removing delivery option with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("removed delivery option in database")

	return nil
}
