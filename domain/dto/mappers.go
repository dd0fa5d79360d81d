package dto

import (
	"event-gallery/domain/models"
	"event-gallery/domain/services"
)

func ToEventResponse(e *models.Event, photoCount, videoCount int64) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		EventDate:     e.EventDate,
		CoverImageURL: e.CoverImageURL,
		PhotoCount:    photoCount,
		VideoCount:    videoCount,
		CreatedAt:     e.CreatedAt,
	}
}

func ToEventListResponse(events []services.EventWithCounts, total int64, page, limit int) EventListResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = ToEventResponse(&e.Event, e.PhotoCount, e.VideoCount)
	}
	return EventListResponse{Events: out, Total: total, Page: page, Limit: limit}
}

func ToMediaResponse(m *models.Media) MediaResponse {
	return MediaResponse{
		ID:        m.ID,
		EventID:   m.EventID,
		FileURL:   m.FileURL,
		FileType:  string(m.FileType),
		FileName:  m.FileName,
		FileSize:  m.FileSize,
		CreatedAt: m.CreatedAt,
	}
}

func ToMediaListResponse(media []models.Media, total int64, page, limit int) MediaListResponse {
	out := make([]MediaResponse, len(media))
	for i := range media {
		out[i] = ToMediaResponse(&media[i])
	}
	return MediaListResponse{Media: out, Total: total, Page: page, Limit: limit}
}

func ToExternalVideoResponse(v *models.ExternalVideo) ExternalVideoResponse {
	return ExternalVideoResponse{
		ID:          v.ID,
		EventID:     v.EventID,
		PersonName:  v.PersonName,
		DriveLink:   v.DriveLink,
		Description: v.Description,
		Available:   v.Available,
		CreatedAt:   v.CreatedAt,
	}
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
