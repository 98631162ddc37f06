package service

import (
	"sort"
	"strings"

	"github.com/drchoshit/new-weekly-plan-maker/internal/model"
)

// ── 신규생 멘토 추천 랭킹 ──
//
// 신규생 명단과 요일별 멘토 근무표, 주차별 출결을 받아
// 학생마다 추천 멘토 1~3순위를 산출하는 순수 계산이다.
// 입력을 변경하지 않으며 I/O 가 없다.

// MentorsByDay 요일 → 멘토 근무 슬롯 목록
type MentorsByDay map[string][]model.MentorSlot

// AttendanceByPeriod 주차 → 학생 → 주간 출결
type AttendanceByPeriod map[string]map[string]WeekAttendance

// RankReasons 순위별 선정 사유
type RankReasons struct {
	First  string
	Second string
	Third  string
}

// RankResult 학생 한 명의 추천 결과.
// Assigned=false 이면 조건을 만족하는 후보가 전혀 없는 상태다.
type RankResult struct {
	StudentID string
	Assigned  bool
	First     string
	Second    string
	Third     string
	Reasons   RankReasons
}

// RankInput 랭킹 입력
type RankInput struct {
	Students           []model.Student
	MentorsByDay       MentorsByDay
	AttendanceByPeriod AttendanceByPeriod
	CurrentPeriodID    string
}

const (
	reasonFixedMentor   = "고정 멘토"
	reasonConditionsMet = "출결·시간·조건 충족"
	reasonNotMet        = "조건 미충족"
)

// normalizeMentorTime 멘토 근무시간 원문의 공백을 제거하고
// 첫 "-" 를 "~" 로 치환한다. 랭킹은 단일 구간만 취급한다.
func normalizeMentorTime(time string) string {
	if time == "" {
		return ""
	}
	cleaned := removeWhitespace(time)
	return strings.Replace(cleaned, "-", "~", 1)
}

// personalityCompatible 성향 궁합 판정.
// 유일한 배제 조합은 멘토·학생 모두 "극I" 인 경우다.
func personalityCompatible(mentorP, studentP string) bool {
	if mentorP == "" || studentP == "" {
		return true
	}
	return !(mentorP == "극I" && studentP == "극I")
}

type rankCandidate struct {
	name  string
	score int
}

// RankMentorsForStudents 신규생별 추천 멘토 랭킹을 계산한다.
func RankMentorsForStudents(in RankInput) []RankResult {
	results := make([]RankResult, 0, len(in.Students))

	for _, student := range in.Students {
		results = append(results, rankOneStudent(student, in))
	}
	return results
}

func rankOneStudent(student model.Student, in RankInput) RankResult {
	// 현재 자동배정 기준 주차의 출결만 사용한다
	var attendance WeekAttendance
	if byStudent, ok := in.AttendanceByPeriod[in.CurrentPeriodID]; ok {
		attendance = byStudent[student.StudentID]
	}

	// 고정 멘토는 점수 계산 없이 단독 1순위
	if student.FixedMentor != "" {
		return RankResult{
			StudentID: student.StudentID,
			Assigned:  true,
			First:     student.FixedMentor,
			Reasons:   RankReasons{First: reasonFixedMentor},
		}
	}

	// 멘토 이름 기준 중복 제거, 점수는 요일을 넘어 누적.
	// 발견 순서를 보존해 동점 시 먼저 만난 멘토가 앞선다.
	var order []string
	index := make(map[string]*rankCandidate)

	for _, day := range Days {
		pair, ok := attendance[day]
		if !ok || pair.Start == "" || pair.End == "" {
			continue
		}
		sStart, ok1 := ToMinutes(pair.Start)
		sEnd, ok2 := ToMinutes(pair.End)
		if !ok1 || !ok2 {
			continue
		}

		for _, mentor := range in.MentorsByDay[day] {
			if mentor.Name == "" {
				continue
			}
			if mentor.Name == student.BannedMentor1 || mentor.Name == student.BannedMentor2 {
				continue
			}

			normTime := normalizeMentorTime(mentor.WorkTime)
			if !strings.Contains(normTime, "~") {
				continue
			}
			parts := strings.Split(normTime, "~")
			mStart, ok1 := ToMinutes(parts[0])
			mEnd, ok2 := ToMinutes(parts[1])
			if !ok1 || !ok2 {
				continue
			}

			overlap := minInt(sEnd, mEnd) - maxInt(sStart, mStart)
			if overlap < overlapThreshold {
				continue
			}

			// 조건 불충족 멘토는 후보 생성 자체를 하지 않는다
			if mentor.BirthYear != 0 && student.BirthYear != 0 && mentor.BirthYear >= student.BirthYear {
				continue
			}
			if !personalityCompatible(mentor.Personality, student.Personality) {
				continue
			}

			cand, exists := index[mentor.Name]
			if !exists {
				cand = &rankCandidate{name: mentor.Name}
				index[mentor.Name] = cand
				order = append(order, mentor.Name)
			}

			// 과목 매칭 점수 (최대 4점, 각 항목 독립)
			if mentor.MathSubject == student.Math {
				cand.score++
			}
			if mentor.KoreanSubject == student.Korean {
				cand.score++
			}
			if student.Explore1 == mentor.Explore1 || student.Explore1 == mentor.Explore2 {
				cand.score++
			}
			if student.Explore2 == mentor.Explore1 || student.Explore2 == mentor.Explore2 {
				cand.score++
			}
		}
	}

	sorted := make([]*rankCandidate, 0, len(order))
	for _, name := range order {
		sorted = append(sorted, index[name])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})

	if len(sorted) == 0 {
		return RankResult{
			StudentID: student.StudentID,
			Assigned:  false,
			Reasons:   RankReasons{First: reasonNotMet},
		}
	}

	result := RankResult{
		StudentID: student.StudentID,
		Assigned:  true,
		First:     sorted[0].name,
		Reasons:   RankReasons{First: reasonConditionsMet},
	}
	if len(sorted) > 1 {
		result.Second = sorted[1].name
	}
	if len(sorted) > 2 {
		result.Third = sorted[2].name
	}
	return result
}
