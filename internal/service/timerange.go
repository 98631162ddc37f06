package service

import (
	"strconv"
	"strings"
)

// ── 시간·구간 유틸 ──
//
// 출결/근무시간 문자열을 분 단위 정수로 바꿔 비교한다.
// 파싱 실패는 에러가 아니라 "비교 불가 → 매칭 없음"으로 강등된다.

// TimePair 정규화된 [시작, 종료] 시각 쌍. 값은 "HH:MM" 문자열이다.
type TimePair struct {
	Start string
	End   string
}

// WeekAttendance 요일 → 출결 시각 쌍
type WeekAttendance map[string]TimePair

// TimeRange 파싱된 근무 구간. EndMin 은 자정 넘김 보정이 적용된 값이다.
type TimeRange struct {
	Start    string
	End      string
	StartMin int
	EndMin   int
}

// ToMinutes "HH:MM" 문자열을 자정 기준 분으로 변환한다.
// 형식이 깨진 입력(콜론 없음, 숫자 아님)은 ok=false 를 반환한다.
func ToMinutes(t string) (int, bool) {
	if t == "" || !strings.Contains(t, ":") {
		return 0, false
	}
	parts := strings.SplitN(t, ":", 2)
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// NormalizeTimePair 이질적인 출결 원문 값을 TimePair 로 정규화한다.
//
//   - ["08:00", "13:00"] 형태의 배열 ([]string / []interface{})
//   - "08:00~13:00" / "08:00 - 13:00" / "08:00-13:00" 문자열
//   - "08:00" 단일 시각 → {Start:"08:00", End:""}
//
// 양쪽 모두 비어 있거나 형태를 인식할 수 없으면 ok=false.
func NormalizeTimePair(value interface{}) (TimePair, bool) {
	switch v := value.(type) {
	case []string:
		return normalizeSlice(v)
	case []interface{}:
		a := make([]string, len(v))
		for i, e := range v {
			if s, ok := e.(string); ok {
				a[i] = s
			}
		}
		return normalizeSlice(a)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return TimePair{}, false
		}
		cleaned := removeWhitespace(s)
		if parts := strings.Split(cleaned, "~"); len(parts) == 2 {
			return TimePair{Start: parts[0], End: parts[1]}, true
		}
		if parts := strings.Split(cleaned, "-"); len(parts) == 2 {
			return TimePair{Start: parts[0], End: parts[1]}, true
		}
		// 구분자 없는 단일 시각
		if strings.Contains(cleaned, ":") {
			return TimePair{Start: cleaned, End: ""}, true
		}
		return TimePair{}, false
	case TimePair:
		if v.Start == "" && v.End == "" {
			return TimePair{}, false
		}
		return v, true
	default:
		return TimePair{}, false
	}
}

func normalizeSlice(v []string) (TimePair, bool) {
	var a [2]string
	for i := 0; i < len(v) && i < 2; i++ {
		a[i] = strings.TrimSpace(v[i])
	}
	if a[0] == "" && a[1] == "" {
		return TimePair{}, false
	}
	return TimePair{Start: a[0], End: a[1]}, true
}

func removeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// HasValidAttendance 해당 요일에 실제로 비교 가능한 출결이 있는지 판정한다.
func HasValidAttendance(attendance WeekAttendance, day string) bool {
	pair, ok := attendance[day]
	if !ok {
		return false
	}
	if pair.Start == "" || pair.End == "" {
		return false
	}
	if _, ok := ToMinutes(pair.Start); !ok {
		return false
	}
	if _, ok := ToMinutes(pair.End); !ok {
		return false
	}
	return true
}

// ParseMentorRanges 멘토 근무시간 원문을 여러 구간으로 파싱한다.
// 예) "13:00~18:00", "13:00 - 18:00", "10:00~12:00, 13:00~15:00"
// 파싱에 실패한 조각은 조용히 버린다. 종료가 시작보다 빠르면
// 자정 넘김(예: 22:00~01:00)으로 보고 종료에 1440분을 더한다.
func ParseMentorRanges(timeStr string) []TimeRange {
	if timeStr == "" {
		return nil
	}

	var ranges []TimeRange
	for _, chunk := range strings.Split(timeStr, ",") {
		cleaned := removeWhitespace(strings.TrimSpace(chunk))
		if cleaned == "" {
			continue
		}

		var st, en string
		if strings.Contains(cleaned, "~") {
			if parts := strings.Split(cleaned, "~"); len(parts) == 2 {
				st, en = parts[0], parts[1]
			}
		} else if strings.Contains(cleaned, "-") {
			if parts := strings.Split(cleaned, "-"); len(parts) == 2 {
				st, en = parts[0], parts[1]
			}
		}
		if st == "" || en == "" {
			continue
		}

		stMin, ok1 := ToMinutes(st)
		enMin, ok2 := ToMinutes(en)
		if !ok1 || !ok2 {
			continue
		}
		if enMin < stMin {
			enMin += 1440
		}

		ranges = append(ranges, TimeRange{Start: st, End: en, StartMin: stMin, EndMin: enMin})
	}
	return ranges
}

// overlapThreshold 매칭으로 인정하는 최소 겹침(분). 고정 업무 규칙이다.
const overlapThreshold = 30

// IsTimeOverlapped 학생 출결 쌍과 멘토 근무시간 문자열이
// 30분 이상 겹치는 구간을 갖는지 판정한다.
func IsTimeOverlapped(studentPair TimePair, mentorTimeStr string) bool {
	pair, ok := NormalizeTimePair(studentPair)
	if !ok {
		return false
	}

	sStart, ok1 := ToMinutes(pair.Start)
	sEnd, ok2 := ToMinutes(pair.End)
	if !ok1 || !ok2 {
		return false
	}
	// 학생 측 자정 넘김 보정
	if sEnd < sStart {
		sEnd += 1440
	}

	ranges := ParseMentorRanges(mentorTimeStr)
	if len(ranges) == 0 {
		return false
	}

	for _, r := range ranges {
		overlap := minInt(sEnd, r.EndMin) - maxInt(sStart, r.StartMin)
		if overlap >= overlapThreshold {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
