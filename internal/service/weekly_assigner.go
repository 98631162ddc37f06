package service

import (
	"sort"

	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
)

// ── 재학생 주차 연속성 배정 ──
//
// 학생 한 명의 출결과 요일별 멘토 근무표, 그리고 기준 기록(prev)을
// 받아 이번 주 배정 초안을 계산하는 순수 함수다. 실패 경로도
// 예외 없이 구조가 완전한 결과를 돌려준다.

// Days 요일 고정 순서 (월~토)
var Days = []string{"월", "화", "수", "목", "금", "토"}

// dayPriority 기준 요일별 탐색 순서. 단순 거리 공식이 아니라
// 요일마다 손으로 지정된 업무 정책이므로 그대로 유지한다.
var dayPriority = map[string][]string{
	"월": {"월", "화", "수", "목", "금", "토"},
	"화": {"화", "수", "목", "금", "토", "월"},
	"수": {"수", "목", "금", "토", "화", "월"},
	"목": {"목", "수", "금", "화", "토", "월"},
	"금": {"금", "목", "토", "수", "화", "월"},
	"토": {"토", "금", "목", "수", "화", "월"},
}

// DayIndex 월~토 고정 순서에서의 인덱스. 없는 요일은 -1.
func DayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// PrevRecord 연속성 기준이 되는 과거 기록 (멘토 + 요일)
type PrevRecord struct {
	Mentor string
	Day    string
}

// WeeklyDraft 주차 배정 초안.
// Assigned=false 이면 배정 불가이며 Mentor/Day/ToDay 는 빈 값,
// AutoRank/DayDiff 는 의미 없는 값이다. FromDay 는 기준 요일이
// 정해진 뒤 실패한 경우에만 채워진다.
type WeeklyDraft struct {
	Assigned bool
	Mentor   string
	Day      string
	AutoRank int
	FromDay  string
	ToDay    string
	DayDiff  int
}

// WeeklyInput 주차 배정 입력
type WeeklyInput struct {
	Student      model.Student
	Attendance   WeekAttendance
	MentorsByDay MentorsByDay
	Prev         *PrevRecord
}

// countSubjectMatch 과목 일치 수. 국어·수학은 멘토 측 값이
// 비어 있으면 세지 않고, 탐구는 값 그대로 비교한다.
func countSubjectMatch(student model.Student, m model.MentorSlot) int {
	count := 0
	if m.KoreanSubject != "" && m.KoreanSubject == student.Korean {
		count++
	}
	if m.MathSubject != "" && m.MathSubject == student.Math {
		count++
	}
	if student.Explore1 == m.Explore1 || student.Explore1 == m.Explore2 {
		count++
	}
	if student.Explore2 == m.Explore1 || student.Explore2 == m.Explore2 {
		count++
	}
	return count
}

// searchOrder 기준 요일의 탐색 순서. 테이블에 없는 요일이면 월~토 순.
func searchOrder(baseDay string) []string {
	if order, ok := dayPriority[baseDay]; ok {
		return order
	}
	return Days
}

func unassignable(fromDay string) WeeklyDraft {
	return WeeklyDraft{Assigned: false, FromDay: fromDay}
}

// AssignWeekly 재학생 한 명의 이번 주 배정 초안을 계산한다.
func AssignWeekly(in WeeklyInput) WeeklyDraft {
	student := in.Student
	attendance := in.Attendance

	// 기준 요일 결정:
	// 1) 기준 기록의 요일이 있으면 유지
	// 2) 없으면 출결이 실제로 있는 첫 요일
	baseDay := ""
	if in.Prev != nil && in.Prev.Day != "" {
		baseDay = in.Prev.Day
	}
	if baseDay == "" {
		for _, d := range Days {
			if HasValidAttendance(attendance, d) {
				baseDay = d
				break
			}
		}
	}

	// 출결 자체가 없으면 배정 불가
	if baseDay == "" {
		return unassignable("")
	}

	// 고정 멘토: 우선순위 테이블이 아닌 월~토 순서로
	// 해당 멘토가 겹치는 첫 요일을 찾는다.
	if student.FixedMentor != "" {
		for _, d := range Days {
			slot, found := findSlotByName(in.MentorsByDay[d], student.FixedMentor)
			if !found {
				continue
			}
			if !IsTimeOverlapped(attendance[d], slot.WorkTime) {
				continue
			}
			return WeeklyDraft{
				Assigned: true,
				Mentor:   student.FixedMentor,
				Day:      d,
				AutoRank: 1,
				FromDay:  baseDay,
				ToDay:    d,
				DayDiff:  DayIndex(d) - DayIndex(baseDay),
			}
		}
		return unassignable(baseDay)
	}

	// 기준 멘토 엄격 유지 (assignBase == "fixed" 일 때만)
	if in.Prev != nil && in.Prev.Mentor != "" && student.AssignBase == "fixed" {
		preferredDay := in.Prev.Day
		if preferredDay != "" && HasValidAttendance(attendance, preferredDay) {
			for _, m := range in.MentorsByDay[preferredDay] {
				if m.Name != in.Prev.Mentor {
					continue
				}
				if !IsTimeOverlapped(attendance[preferredDay], m.WorkTime) {
					continue
				}
				return WeeklyDraft{
					Assigned: true,
					Mentor:   m.Name,
					Day:      preferredDay,
					AutoRank: 0,
					FromDay:  preferredDay,
					ToDay:    preferredDay,
					DayDiff:  0,
				}
			}
		}
		// 유지 불가 시 일반 탐색으로 진행
	}

	// 최초 멘토 기준: 멘토 완전 고정.
	// 우선순위 테이블 전체를 돌아도 안 맞으면 다른 멘토로
	// 대체하지 않고 미배정으로 끝낸다.
	if student.AssignBase == "initial" && in.Prev != nil && in.Prev.Mentor != "" {
		lockedMentor := in.Prev.Mentor
		for _, targetDay := range searchOrder(baseDay) {
			if !HasValidAttendance(attendance, targetDay) {
				continue
			}
			matched := false
			for _, m := range in.MentorsByDay[targetDay] {
				if m.Name == lockedMentor && IsTimeOverlapped(attendance[targetDay], m.WorkTime) {
					matched = true
					break
				}
			}
			if matched {
				return WeeklyDraft{
					Assigned: true,
					Mentor:   lockedMentor,
					Day:      targetDay,
					AutoRank: 1,
					FromDay:  baseDay,
					ToDay:    targetDay,
					DayDiff:  DayIndex(targetDay) - DayIndex(baseDay),
				}
			}
		}
		return unassignable(baseDay)
	}

	// 일반 탐색: 기준 요일의 우선순위 순으로 첫 가용 요일을 찾는다
	for _, targetDay := range searchOrder(baseDay) {
		if !HasValidAttendance(attendance, targetDay) {
			continue
		}

		studentTime := attendance[targetDay]
		mentors := in.MentorsByDay[targetDay]
		if len(mentors) == 0 {
			continue
		}

		// 배제 멘토 제거 + 시간이 겹치는 멘토만
		var available []model.MentorSlot
		for _, m := range mentors {
			if m.Name == "" {
				continue
			}
			if m.Name == student.BannedMentor1 || m.Name == student.BannedMentor2 {
				continue
			}
			if !IsTimeOverlapped(studentTime, m.WorkTime) {
				continue
			}
			available = append(available, m)
		}
		if len(available) == 0 {
			continue
		}

		// 최근 멘토 최우선 (assignBase 와 무관)
		if in.Prev != nil && in.Prev.Mentor != "" {
			for _, m := range available {
				if m.Name == in.Prev.Mentor {
					return WeeklyDraft{
						Assigned: true,
						Mentor:   m.Name,
						Day:      targetDay,
						AutoRank: 1,
						FromDay:  baseDay,
						ToDay:    targetDay,
						DayDiff:  DayIndex(targetDay) - DayIndex(baseDay),
					}
				}
			}
		}

		// 그 외: 과목 매칭 높은 순, 동률이면 먼저 나온 멘토
		type rankedMentor struct {
			name  string
			match int
		}
		ranked := make([]rankedMentor, 0, len(available))
		for _, m := range available {
			ranked = append(ranked, rankedMentor{name: m.Name, match: countSubjectMatch(student, m)})
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].match > ranked[j].match
		})

		return WeeklyDraft{
			Assigned: true,
			Mentor:   ranked[0].name,
			Day:      targetDay,
			AutoRank: 2,
			FromDay:  baseDay,
			ToDay:    targetDay,
			DayDiff:  DayIndex(targetDay) - DayIndex(baseDay),
		}
	}

	return unassignable(baseDay)
}

// findSlotByName 같은 요일 슬롯 목록에서 이름이 일치하는 첫 슬롯
func findSlotByName(slots []model.MentorSlot, name string) (model.MentorSlot, bool) {
	for _, m := range slots {
		if m.Name == name {
			return m, true
		}
	}
	return model.MentorSlot{}, false
}
