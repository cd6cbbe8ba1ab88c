// file: internals/features/school/academics/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomModel struct {
	RoomID uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id;default:gen_random_uuid()"`

	RoomName     string  `json:"room_name" gorm:"type:text;not null;uniqueIndex;column:room_name"` // "Lab IPA", "R-201"
	RoomLocation *string `json:"room_location,omitempty" gorm:"type:text;column:room_location"`
	RoomCapacity *int    `json:"room_capacity,omitempty" gorm:"type:int;column:room_capacity"`

	RoomIsActive bool `json:"room_is_active" gorm:"type:boolean;not null;default:true;column:room_is_active"`

	RoomCreatedAt time.Time      `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
	RoomUpdatedAt time.Time      `json:"room_updated_at" gorm:"column:room_updated_at;not null;autoUpdateTime"`
	RoomDeletedAt gorm.DeletedAt `json:"room_deleted_at" gorm:"column:room_deleted_at;index"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
