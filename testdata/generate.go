package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
)

type User struct {
	ID   int64  `parquet:"id"`
	Name string `parquet:"name"`
	Age  int32  `parquet:"age"`
	City string `parquet:"city"`
}

func main() {
	users := []User{
		{ID: 1, Name: "alice", Age: 30, City: "lisbon"},
		{ID: 2, Name: "bob", Age: 25, City: "berlin"},
		{ID: 3, Name: "charlie", Age: 35, City: "austin"},
		{ID: 4, Name: "diana", Age: 28, City: "berlin"},
		{ID: 5, Name: "eve", Age: 42, City: "oslo"},
	}

	writeParquet(users)
	writeCSV(users)
}

func writeParquet(users []User) {
	file, err := os.Create("users.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[User](file)
	if _, err := writer.Write(users); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated users.parquet with 5 users")
}

func writeCSV(users []User) {
	file, err := os.Create("users.csv")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"id", "name", "age", "city"}); err != nil {
		log.Fatal(err)
	}
	for _, u := range users {
		record := []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			strconv.Itoa(int(u.Age)),
			u.City,
		}
		if err := w.Write(record); err != nil {
			log.Fatal(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated users.csv with 5 users")
}
