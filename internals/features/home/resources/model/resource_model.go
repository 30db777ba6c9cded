package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ResourceModel is counselor-published guidance content (study tips,
// wellness guides, career primers). The image URL is an opaque string.
type ResourceModel struct {
	ResourceID        uuid.UUID      `gorm:"column:resource_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"resource_id"`
	ResourceTitle     string         `gorm:"column:resource_title;type:varchar(255);not null" json:"resource_title"`
	ResourceSlug      string         `gorm:"column:resource_slug;type:varchar(255);unique;not null" json:"resource_slug"`
	ResourceBody      string         `gorm:"column:resource_body;type:text;not null" json:"resource_body"`
	ResourceImageURL  string         `gorm:"column:resource_image_url;type:text" json:"resource_image_url,omitempty"`
	ResourceTags      pq.StringArray `gorm:"column:resource_tags;type:text[]" json:"resource_tags,omitempty"`
	ResourceAuthorID  uuid.UUID      `gorm:"column:resource_author_id;type:uuid;not null" json:"resource_author_id"`
	ResourceCreatedAt time.Time      `gorm:"column:resource_created_at;autoCreateTime" json:"resource_created_at"`
	ResourceUpdatedAt time.Time      `gorm:"column:resource_updated_at;autoUpdateTime" json:"resource_updated_at"`
}

func (ResourceModel) TableName() string {
	return "resources"
}
