package store

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func titlePattern(t *testing.T, filter bson.M) primitive.Regex {
	t.Helper()
	clause, ok := filter["title"].(bson.M)
	if !ok {
		t.Fatalf("no title clause in %v", filter)
	}
	pattern, ok := clause["$regex"].(primitive.Regex)
	if !ok {
		t.Fatalf("title clause is not a regex: %v", clause)
	}
	return pattern
}

func TestJobSearchFilterEscapesMetacharacters(t *testing.T) {
	filter := jobSearchFilter("C++ (remote)", "")

	pattern := titlePattern(t, filter)
	if pattern.Options != "i" {
		t.Errorf("matching must stay case-insensitive, options = %q", pattern.Options)
	}

	re, err := regexp.Compile(pattern.Pattern)
	if err != nil {
		t.Fatalf("escaped pattern must compile: %v", err)
	}
	if !re.MatchString("Senior C++ (remote) Developer") {
		t.Errorf("pattern %q must match the literal term", pattern.Pattern)
	}
	if re.MatchString("Senior C Developer") {
		t.Errorf("pattern %q must not match as a regex", pattern.Pattern)
	}
}

func TestJobSearchFilterOmitsEmptyTerms(t *testing.T) {
	if filter := jobSearchFilter("", ""); len(filter) != 0 {
		t.Errorf("empty terms must yield an empty filter, got %v", filter)
	}

	filter := jobSearchFilter("", "Nairobi")
	if _, ok := filter["title"]; ok {
		t.Errorf("no title clause expected: %v", filter)
	}
	if _, ok := filter["location"]; !ok {
		t.Errorf("location clause expected: %v", filter)
	}
}
