// file: internals/features/school/academics/rooms/dto/room_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	m "sekolahku_backend/internals/features/school/academics/rooms/model"
)

type CreateRoomRequest struct {
	RoomName     string  `json:"room_name" validate:"required,min=1"`
	RoomLocation *string `json:"room_location,omitempty"`
	RoomCapacity *int    `json:"room_capacity,omitempty" validate:"omitempty,gte=1"`
}

func (r *CreateRoomRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateRoomRequest) ToModel() *m.RoomModel {
	return &m.RoomModel{
		RoomName:     strings.TrimSpace(r.RoomName),
		RoomLocation: r.RoomLocation,
		RoomCapacity: r.RoomCapacity,
		RoomIsActive: true,
	}
}

type PatchRoomRequest struct {
	RoomName     *string `json:"room_name,omitempty" validate:"omitempty,min=1"`
	RoomLocation *string `json:"room_location,omitempty"`
	RoomCapacity *int    `json:"room_capacity,omitempty" validate:"omitempty,gte=1"`
	RoomIsActive *bool   `json:"room_is_active,omitempty"`
}

func (r *PatchRoomRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchRoomRequest) ApplyPatch(dst *m.RoomModel) {
	if r.RoomName != nil {
		dst.RoomName = strings.TrimSpace(*r.RoomName)
	}
	if r.RoomLocation != nil {
		dst.RoomLocation = r.RoomLocation
	}
	if r.RoomCapacity != nil {
		dst.RoomCapacity = r.RoomCapacity
	}
	if r.RoomIsActive != nil {
		dst.RoomIsActive = *r.RoomIsActive
	}
}
