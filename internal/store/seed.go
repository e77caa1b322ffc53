package store

import (
	"time"

	"github.com/Hariraj-0611/Leave-Management/internal/employee"
	"github.com/Hariraj-0611/Leave-Management/internal/leave"
	"github.com/Hariraj-0611/Leave-Management/internal/notification"
)

// DefaultDepartments returns the fixed department reference data.
func DefaultDepartments() []string {
	return []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations"}
}

// SeedState builds the sample data set used on first run and whenever a
// persisted snapshot is absent or unusable: four employees across two
// departments with manager relationships, and two sample leaves.
func SeedState() State {
	employees := []employee.Employee{
		{
			ID:           "emp_1",
			Name:         "John Doe",
			Email:        "john.doe@company.com",
			Department:   "Engineering",
			Role:         employee.RoleEmployee,
			ManagerID:    employee.ManagerRef("emp_3"),
			JoinDate:     "2023-01-15",
			LeaveBalance: map[string]int{leave.TypeAnnual: 18, leave.TypeSick: 10, leave.TypeCasual: 15},
		},
		{
			ID:           "emp_2",
			Name:         "Jane Smith",
			Email:        "jane.smith@company.com",
			Department:   "Marketing",
			Role:         employee.RoleEmployee,
			ManagerID:    employee.ManagerRef("emp_4"),
			JoinDate:     "2022-06-01",
			LeaveBalance: map[string]int{leave.TypeAnnual: 12, leave.TypeSick: 7, leave.TypeCasual: 10},
		},
		{
			ID:           "emp_3",
			Name:         "Robert Johnson",
			Email:        "robert.j@company.com",
			Department:   "Engineering",
			Role:         employee.RoleManager,
			JoinDate:     "2021-03-10",
			LeaveBalance: map[string]int{leave.TypeAnnual: 20, leave.TypeSick: 12, leave.TypeCasual: 10},
		},
		{
			ID:           "emp_4",
			Name:         "Sarah Williams",
			Email:        "sarah.w@company.com",
			Department:   "Marketing",
			Role:         employee.RoleManager,
			JoinDate:     "2020-11-20",
			LeaveBalance: map[string]int{leave.TypeAnnual: 22, leave.TypeSick: 15, leave.TypeCasual: 12},
		},
	}

	approvedBy := "emp_3"
	approvedAt := time.Date(2024, 1, 16, 14, 20, 0, 0, time.UTC)

	leaves := []leave.Leave{
		{
			ID:           "leave_1",
			EmployeeID:   "emp_1",
			EmployeeName: "John Doe",
			Type:         leave.TypeAnnual,
			StartDate:    "2024-02-01",
			EndDate:      "2024-02-05",
			Reason:       "Family vacation",
			Status:       leave.StatusApproved,
			AppliedDate:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			ApprovedBy:   &approvedBy,
			ApprovedDate: &approvedAt,
		},
		{
			ID:           "leave_2",
			EmployeeID:   "emp_2",
			EmployeeName: "Jane Smith",
			Type:         leave.TypeSick,
			StartDate:    "2024-02-10",
			EndDate:      "2024-02-10",
			Reason:       "Medical appointment",
			Status:       leave.StatusPending,
			AppliedDate:  time.Date(2024, 2, 5, 9, 15, 0, 0, time.UTC),
		},
	}

	currentUser := employees[0].Clone()

	return State{
		Employees:     employees,
		Leaves:        leaves,
		Notifications: []notification.Notification{},
		Departments:   DefaultDepartments(),
		LeaveTypes:    leave.DefaultTypes(),
		CurrentUser:   &currentUser,
	}
}
