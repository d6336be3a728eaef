package leetcode

import (
	"errors"
	"testing"
)

func samplePayload() *profileData {
	data := &profileData{}
	user := &matchedUser{Username: "heet"}
	user.Profile.Ranking = 123456
	user.SubmitStats.Accepted = []submissionRow{
		{Difficulty: "All", Count: 617, Submissions: 902},
		{Difficulty: "Easy", Count: 200, Submissions: 250},
		{Difficulty: "Medium", Count: 300, Submissions: 450},
		{Difficulty: "Hard", Count: 117, Submissions: 202},
	}
	user.SubmitStats.Total = []submissionRow{
		{Difficulty: "All", Count: 731, Submissions: 1804},
	}
	data.MatchedUser = user
	return data
}

func TestParseStats(t *testing.T) {
	stats, err := parseStats("heet", samplePayload())
	if err != nil {
		t.Fatalf("parseStats() error = %v", err)
	}

	if stats.Username != "heet" {
		t.Errorf("Username = %q, want %q", stats.Username, "heet")
	}
	if stats.Ranking != 123456 {
		t.Errorf("Ranking = %d, want 123456", stats.Ranking)
	}
	if stats.TotalSolved != 617 || stats.EasySolved != 200 || stats.MediumSolved != 300 || stats.HardSolved != 117 {
		t.Errorf("solve counts = %d/%d/%d/%d, want 617/200/300/117",
			stats.TotalSolved, stats.EasySolved, stats.MediumSolved, stats.HardSolved)
	}
	if stats.Contest != nil {
		t.Errorf("Contest = %+v, want nil without contest data", stats.Contest)
	}
}

func TestParseStats_AcceptanceRate(t *testing.T) {
	// 902 accepted of 1804 total submissions = 50.0%.
	stats, err := parseStats("heet", samplePayload())
	if err != nil {
		t.Fatalf("parseStats() error = %v", err)
	}
	if stats.AcceptanceRate != 50.0 {
		t.Errorf("AcceptanceRate = %v, want 50.0", stats.AcceptanceRate)
	}
}

func TestParseStats_AcceptanceRateNoSubmissions(t *testing.T) {
	data := samplePayload()
	data.MatchedUser.SubmitStats.Total = nil

	stats, err := parseStats("heet", data)
	if err != nil {
		t.Fatalf("parseStats() error = %v", err)
	}
	if stats.AcceptanceRate != 0 {
		t.Errorf("AcceptanceRate = %v, want 0 without submission totals", stats.AcceptanceRate)
	}
}

func TestParseStats_Contest(t *testing.T) {
	pct := 8.249
	data := samplePayload()
	data.ContestRanking = &contestRanking{
		AttendedContestsCount: 12,
		Rating:                1654.2345,
		TopPercentage:         &pct,
	}

	stats, err := parseStats("heet", data)
	if err != nil {
		t.Fatalf("parseStats() error = %v", err)
	}

	if stats.Contest == nil {
		t.Fatal("Contest = nil, want populated")
	}
	if stats.Contest.Rating != 1654.23 {
		t.Errorf("Contest.Rating = %v, want 1654.23", stats.Contest.Rating)
	}
	if stats.Contest.Attended != 12 {
		t.Errorf("Contest.Attended = %d, want 12", stats.Contest.Attended)
	}
	if stats.Contest.TopPercentage == nil || *stats.Contest.TopPercentage != 8.25 {
		t.Errorf("Contest.TopPercentage = %v, want 8.25", stats.Contest.TopPercentage)
	}
}

func TestParseStats_UserNotFound(t *testing.T) {
	_, err := parseStats("ghost", &profileData{})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("parseStats() error = %v, want ErrUserNotFound", err)
	}
}
