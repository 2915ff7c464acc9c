package service

import (
	"time"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
)

type infoService struct {
	provider Provider
	fetcher  FetchService
	logger   *logger.Logger
}

// NewInfoService creates the InfoService over provider state and the fetch
// controller's throttle tracking.
func NewInfoService(provider Provider, fetcher FetchService, log *logger.Logger) InfoService {
	return &infoService{provider: provider, fetcher: fetcher, logger: log}
}

func (s *infoService) GetInfo() models.ConfigInfo {
	info := models.ConfigInfo{}

	if t := s.provider.LastFetchTime(); !t.IsZero() {
		info.FetchTimeMillis = t.Round(time.Millisecond).UnixMilli()
	}
	if end := s.fetcher.ThrottledEndTime(); !end.IsZero() {
		info.ThrottledEndTimeMillis = end.Round(time.Millisecond).UnixMilli()
	}

	switch status := s.provider.LastFetchStatus(); status {
	case models.ProviderFetchNone:
		info.LastFetchStatus = models.FetchStatusPending
		info.LastFetchFailureReason = models.FetchFailureReasonInvalid
	case models.ProviderFetchSuccess:
		info.LastFetchStatus = models.FetchStatusSuccess
		info.LastFetchFailureReason = models.FetchFailureReasonInvalid
	case models.ProviderFetchFailure:
		info.LastFetchStatus = models.FetchStatusFailure
		info.LastFetchFailureReason = models.FetchFailureReasonError
	case models.ProviderFetchThrottled:
		info.LastFetchStatus = models.FetchStatusFailure
		info.LastFetchFailureReason = models.FetchFailureReasonThrottled
	default:
		s.logger.Warn().
			Int("status", int(status)).
			Msg("provider returned unrecognized fetch status")
		info.LastFetchStatus = models.FetchStatusFailure
		info.LastFetchFailureReason = models.FetchFailureReasonError
	}

	return info
}
