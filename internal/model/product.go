package model

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog item available for slot selection. The
// design engine treats products as read-only reference data.
type Product struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	SKU         string          `json:"sku" gorm:"type:varchar(100);unique;not null"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:text"`
	CategoryID  uint            `json:"category_id"`
	Category    ProductCategory `json:"category" gorm:"foreignKey:CategoryID"`
	Style       string          `json:"style" gorm:"type:varchar(100);index"`
	Material    string          `json:"material" gorm:"type:varchar(100)"`
	Finish      string          `json:"finish" gorm:"type:varchar(100)"`
	RoomType    string          `json:"room_type" gorm:"type:varchar(50);index"`
	Price       float64         `json:"price" gorm:"not null"`
	Rating      float64         `json:"rating" gorm:"default:0"`
	IsAvailable bool            `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"deleted_at,omitempty" gorm:"index"`
}

// ProductCategory represents product categories
type ProductCategory struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"type:varchar(100);not null;unique"`
	Slug        string         `json:"slug" gorm:"type:varchar(100);uniqueIndex"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
