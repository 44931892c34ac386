package models

// Setting is a key/value row for store identity data such as the store name
// and the receipt footer. The core only passes values through as opaque
// strings.
type Setting struct {
	Key   string `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

const (
	SettingStoreName   = "store_name"
	SettingFooterStruk = "footer_struk"
)
