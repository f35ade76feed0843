package store

import "schoolledger/internal/models"

// Seed installs a small set of sample parents and students when those
// collections are empty, mirroring the starter data a fresh deployment
// ships with. Collections that already hold records are left alone.
func Seed(s *Store) error {
	if s.Parents.Count() == 0 {
		parents := []models.Parent{
			{FirstName: "John", LastName: "Smith", Email: "john@email.com", Phone: "555-0101"},
			{FirstName: "Mary", LastName: "Johnson", Email: "mary@email.com", Phone: "555-0102"},
		}
		for i := range parents {
			if err := s.Parents.Add(&parents[i]); err != nil {
				return err
			}
		}

		if s.Students.Count() == 0 {
			students := []models.Student{
				{FirstName: "Emma", LastName: "Smith", ParentID: parents[0].ID, Teacher: "Ms. Davis", Section: "A"},
				{FirstName: "Liam", LastName: "Smith", ParentID: parents[0].ID, Teacher: "Mr. Wilson", Section: "B"},
				{FirstName: "Olivia", LastName: "Johnson", ParentID: parents[1].ID, Teacher: "Ms. Davis", Section: "A"},
			}
			for i := range students {
				if err := s.Students.Add(&students[i]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
