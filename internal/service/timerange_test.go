package service

import "testing"

func TestToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"09:00", 540, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{" 9 : 30", 570, true},
		{"0900", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, ok := ToMinutes(c.input)
		if ok != c.ok {
			t.Errorf("ToMinutes(%q) ok=%v 기대, 실제=%v", c.input, c.ok, ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ToMinutes(%q)=%d 기대, 실제=%d", c.input, c.want, got)
		}
	}
}

func TestNormalizeTimePair_EquivalentForms(t *testing.T) {
	want := TimePair{Start: "09:00", End: "10:30"}

	inputs := []interface{}{
		"09:00~10:30",
		"09:00-10:30",
		"09:00 - 10:30",
		[]string{"09:00", "10:30"},
		[]interface{}{"09:00", "10:30"},
	}

	for _, in := range inputs {
		got, ok := NormalizeTimePair(in)
		if !ok {
			t.Errorf("NormalizeTimePair(%v) 정규화 실패", in)
			continue
		}
		if got != want {
			t.Errorf("NormalizeTimePair(%v)=%v 기대, 실제=%v", in, want, got)
		}
	}
}

func TestNormalizeTimePair_LoneTime(t *testing.T) {
	got, ok := NormalizeTimePair("14:00")
	if !ok {
		t.Fatal("단일 시각은 정규화되어야 한다")
	}
	if got.Start != "14:00" || got.End != "" {
		t.Errorf("{14:00, \"\"} 기대, 실제=%v", got)
	}
}

func TestNormalizeTimePair_EmptyAndGarbage(t *testing.T) {
	inputs := []interface{}{
		"",
		"   ",
		[]string{"", ""},
		nil,
		123,
		"garbage",
	}

	for _, in := range inputs {
		if _, ok := NormalizeTimePair(in); ok {
			t.Errorf("NormalizeTimePair(%v) 은 실패해야 한다", in)
		}
	}
}

func TestParseMentorRanges_MultiAndOvernight(t *testing.T) {
	ranges := ParseMentorRanges("10:00~12:00, 13:00-15:00")
	if len(ranges) != 2 {
		t.Fatalf("구간 2개 기대, 실제=%d", len(ranges))
	}
	if ranges[0].StartMin != 600 || ranges[0].EndMin != 720 {
		t.Errorf("첫 구간 600~720 기대, 실제=%d~%d", ranges[0].StartMin, ranges[0].EndMin)
	}

	// 자정 넘김 보정
	overnight := ParseMentorRanges("22:00~01:00")
	if len(overnight) != 1 {
		t.Fatalf("구간 1개 기대, 실제=%d", len(overnight))
	}
	if overnight[0].EndMin != 60+1440 {
		t.Errorf("자정 넘김 종료 1500 기대, 실제=%d", overnight[0].EndMin)
	}
}

func TestParseMentorRanges_DropsBadChunks(t *testing.T) {
	ranges := ParseMentorRanges("뭐지, 13:00~15:00, ~~")
	if len(ranges) != 1 {
		t.Fatalf("유효 구간 1개 기대, 실제=%d", len(ranges))
	}
	if ranges[0].Start != "13:00" {
		t.Errorf("13:00 시작 기대, 실제=%s", ranges[0].Start)
	}
}

func TestIsTimeOverlapped_Threshold(t *testing.T) {
	student := TimePair{Start: "14:00", End: "15:00"}

	// 정확히 30분 겹침 → 매칭
	if !IsTimeOverlapped(student, "14:30~18:00") {
		t.Error("30분 겹침은 매칭이어야 한다")
	}
	// 29분 겹침 → 매칭 아님
	if IsTimeOverlapped(student, "14:31~18:00") {
		t.Error("29분 겹침은 매칭이면 안 된다")
	}
}

func TestIsTimeOverlapped_MultiRange(t *testing.T) {
	student := TimePair{Start: "19:00", End: "21:00"}

	// 첫 구간은 안 겹치지만 둘째 구간이 겹침
	if !IsTimeOverlapped(student, "10:00~12:00, 19:00~22:00") {
		t.Error("둘째 구간 겹침을 인식해야 한다")
	}
}

func TestIsTimeOverlapped_InvalidInputs(t *testing.T) {
	if IsTimeOverlapped(TimePair{}, "14:00~18:00") {
		t.Error("빈 출결은 매칭이면 안 된다")
	}
	if IsTimeOverlapped(TimePair{Start: "14:00", End: "18:00"}, "") {
		t.Error("빈 근무시간은 매칭이면 안 된다")
	}
	if IsTimeOverlapped(TimePair{Start: "abc", End: "18:00"}, "14:00~18:00") {
		t.Error("깨진 시각은 매칭이면 안 된다")
	}
}

func TestHasValidAttendance(t *testing.T) {
	att := WeekAttendance{
		"월": {Start: "09:00", End: "13:00"},
		"화": {Start: "09:00", End: ""},
		"수": {Start: "bad", End: "13:00"},
	}

	if !HasValidAttendance(att, "월") {
		t.Error("월요일 출결은 유효해야 한다")
	}
	if HasValidAttendance(att, "화") {
		t.Error("종료 없는 출결은 무효여야 한다")
	}
	if HasValidAttendance(att, "수") {
		t.Error("깨진 시각 출결은 무효여야 한다")
	}
	if HasValidAttendance(att, "목") {
		t.Error("없는 요일은 무효여야 한다")
	}
}
