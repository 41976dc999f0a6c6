// import_students.go — standalone script to parse a student roster CSV and
// register students via the schoolnet API.
//
// Usage:
//
//	go run scripts/import_students.go -roster /path/to/roster.csv -api http://localhost:8000
//
// Expected columns: code,name,center,academic_year,grade,gender,kids_club
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
)

type studentPayload struct {
	Center       string `json:"center"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	AcademicYear string `json:"academic_year"`
	Grade        string `json:"grade"`
	Gender       string `json:"gender"`
	KidsClub     bool   `json:"kids_club"`
}

var columns = []string{"code", "name", "center", "academic_year", "grade", "gender", "kids_club"}

func main() {
	rosterPath := flag.String("roster", "roster.csv", "path to roster CSV file")
	apiURL := flag.String("api", "http://localhost:8000", "schoolnet API base URL")
	dryRun := flag.Bool("dry-run", false, "print students without posting")
	flag.Parse()

	f, err := os.Open(*rosterPath)
	if err != nil {
		log.Fatalf("open roster: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		log.Fatalf("read header: %v", err)
	}
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			log.Fatalf("roster missing column %q", col)
		}
	}

	var students []studentPayload
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Fatalf("line %d: %v", line, err)
		}

		cell := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }
		if cell("code") == "" || cell("name") == "" || cell("center") == "" {
			log.Printf("line %d: skipping row without code/name/center", line)
			continue
		}

		students = append(students, studentPayload{
			Code:         cell("code"),
			Name:         cell("name"),
			Center:       cell("center"),
			AcademicYear: cell("academic_year"),
			Grade:        cell("grade"),
			Gender:       cell("gender"),
			KidsClub:     strings.EqualFold(cell("kids_club"), "yes") || cell("kids_club") == "1",
		})
	}

	log.Printf("parsed %d students from %s", len(students), *rosterPath)

	if *dryRun {
		for _, st := range students {
			fmt.Printf("%s  %-30s  %-20s  %s\n", st.Code, st.Name, st.Center, st.Grade)
		}
		return
	}

	created, failed := 0, 0
	for _, st := range students {
		body, _ := json.Marshal(st)
		resp, err := http.Post(*apiURL+"/api/v1/students", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("%s: %v", st.Code, err)
			failed++
			continue
		}
		msg, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			log.Printf("%s: already registered, skipping", st.Code)
		default:
			log.Printf("%s: %d %s", st.Code, resp.StatusCode, strings.TrimSpace(string(msg)))
			failed++
		}
	}

	log.Printf("done: %d created, %d failed", created, failed)
}
