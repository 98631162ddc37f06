package model

import "time"

// Period 배정 기준 주차 테이블 — periods
//
// PeriodID 는 클라이언트가 부여하는 문자열 식별자를 그대로 사용한다.
// 주차 순서는 CreatedAt 오름차순으로 결정된다.
type Period struct {
	PeriodID  string     `gorm:"type:varchar(50);primaryKey" json:"period_id"`
	Name      string     `gorm:"type:varchar(100);not null"  json:"name"`
	StartDate *time.Time `gorm:"type:date"                   json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"type:date"                   json:"end_date,omitempty"`
	BaseModel
}

// TableName 테이블명 지정
func (Period) TableName() string { return "periods" }
