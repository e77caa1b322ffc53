package store_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Hariraj-0611/Leave-Management/internal/leave"
	"github.com/Hariraj-0611/Leave-Management/internal/store"
)

var _ = Describe("Queries", func() {
	var state store.State

	BeforeEach(func() {
		state = store.SeedState()
	})

	Describe("HasOverlap", func() {
		// seed: emp_2 has a pending sick leave on 2024-02-10

		It("flags a same-type request on the same day", func() {
			Expect(store.HasOverlap(state, "emp_2", leave.TypeSick, "2024-02-10", "2024-02-10")).To(BeTrue())
		})

		It("does not flag an adjacent same-type request", func() {
			Expect(store.HasOverlap(state, "emp_2", leave.TypeSick, "2024-02-11", "2024-02-12")).To(BeFalse())
		})

		It("does not flag a different type on the same day", func() {
			Expect(store.HasOverlap(state, "emp_2", leave.TypeCasual, "2024-02-10", "2024-02-10")).To(BeFalse())
		})

		It("does not flag another employee's range", func() {
			Expect(store.HasOverlap(state, "emp_3", leave.TypeSick, "2024-02-10", "2024-02-10")).To(BeFalse())
		})

		It("ignores rejected leaves", func() {
			decided := store.Reduce(state, store.UpdateLeaveStatus{
				LeaveID:    "leave_2",
				Status:     leave.StatusRejected,
				ApproverID: "emp_4",
			})
			Expect(store.HasOverlap(decided, "emp_2", leave.TypeSick, "2024-02-10", "2024-02-10")).To(BeFalse())
		})
	})

	Describe("LeavesForDay", func() {
		It("returns leaves whose inclusive range contains the date", func() {
			Expect(store.LeavesForDay(state, "2024-02-03")).To(HaveLen(1))
			Expect(store.LeavesForDay(state, "2024-02-05")).To(HaveLen(1))
			Expect(store.LeavesForDay(state, "2024-02-10")).To(HaveLen(1))
		})

		It("returns nothing for an uncovered date", func() {
			Expect(store.LeavesForDay(state, "2024-02-06")).To(BeEmpty())
		})
	})

	Describe("FilterLeaves", func() {
		It("filters by status", func() {
			out := store.FilterLeaves(state, store.LeaveFilter{Status: leave.StatusPending})
			Expect(out).To(HaveLen(1))
			Expect(out[0].ID).To(Equal("leave_2"))
		})

		It("filters by type", func() {
			out := store.FilterLeaves(state, store.LeaveFilter{Type: leave.TypeAnnual})
			Expect(out).To(HaveLen(1))
			Expect(out[0].ID).To(Equal("leave_1"))
		})

		It("filters by department through the employee lookup", func() {
			out := store.FilterLeaves(state, store.LeaveFilter{Department: "Marketing"})
			Expect(out).To(HaveLen(1))
			Expect(out[0].EmployeeID).To(Equal("emp_2"))
		})

		It("searches employee name and reason case-insensitively", func() {
			Expect(store.FilterLeaves(state, store.LeaveFilter{Search: "jane"})).To(HaveLen(1))
			Expect(store.FilterLeaves(state, store.LeaveFilter{Search: "VACATION"})).To(HaveLen(1))
			Expect(store.FilterLeaves(state, store.LeaveFilter{Search: "zzz"})).To(BeEmpty())
		})

		It("restricts to the current user's own leaves in employee mode", func() {
			out := store.FilterLeaves(state, store.LeaveFilter{Mode: store.ModeEmployee})
			Expect(out).To(HaveLen(1))
			Expect(out[0].EmployeeID).To(Equal("emp_1"))
		})

		It("restricts to direct reports in approval mode", func() {
			asManager := store.Reduce(state, store.SwitchUser{EmployeeID: "emp_4"})
			out := store.FilterLeaves(asManager, store.LeaveFilter{Mode: store.ModeApproval})
			Expect(out).To(HaveLen(1))
			Expect(out[0].EmployeeID).To(Equal("emp_2"))
		})

		It("returns nothing in approval mode for a non-manager", func() {
			out := store.FilterLeaves(state, store.LeaveFilter{Mode: store.ModeApproval})
			Expect(out).To(BeEmpty())
		})
	})

	Describe("Aggregates", func() {
		It("counts per status", func() {
			counts := store.CountByStatus(state)
			Expect(counts[leave.StatusApproved]).To(Equal(1))
			Expect(counts[leave.StatusPending]).To(Equal(1))
			Expect(counts[leave.StatusRejected]).To(Equal(0))
		})

		It("counts per type", func() {
			counts := store.CountByType(state)
			Expect(counts[leave.TypeAnnual]).To(Equal(1))
			Expect(counts[leave.TypeSick]).To(Equal(1))
		})

		It("counts per department, resolving through employees", func() {
			counts := store.CountByDepartment(state)
			Expect(counts["Engineering"]).To(Equal(1))
			Expect(counts["Marketing"]).To(Equal(1))
		})

		It("counts dangling employee references under Unknown", func() {
			state.Leaves = append(state.Leaves, leave.Leave{
				ID:         "leave_x",
				EmployeeID: "emp_gone",
				Type:       leave.TypeAnnual,
				StartDate:  "2024-02-20",
				EndDate:    "2024-02-20",
			})
			counts := store.CountByDepartment(state)
			Expect(counts["Unknown"]).To(Equal(1))
		})

		It("counts leaves starting in a given month", func() {
			Expect(store.LeavesInMonth(state, 2024, 2)).To(Equal(2))
			Expect(store.LeavesInMonth(state, 2024, 3)).To(Equal(0))
		})
	})

	Describe("PendingApprovals", func() {
		It("lists pending leaves of direct reports only", func() {
			Expect(store.PendingApprovals(state, "emp_4")).To(HaveLen(1))
			Expect(store.PendingApprovals(state, "emp_3")).To(BeEmpty())
		})
	})

	Describe("NotificationsFor", func() {
		It("filters by user and read flag", func() {
			withNotif := store.Reduce(state, store.ApplyLeave{
				EmployeeID: "emp_1",
				Type:       leave.TypeAnnual,
				StartDate:  "2024-03-01",
				EndDate:    "2024-03-01",
				Reason:     "Errand",
			})

			Expect(store.NotificationsFor(withNotif, "emp_3", true)).To(HaveLen(1))
			Expect(store.NotificationsFor(withNotif, "emp_1", true)).To(BeEmpty())

			id := withNotif.Notifications[0].ID
			read := store.Reduce(withNotif, store.MarkNotificationRead{NotificationID: id})
			Expect(store.NotificationsFor(read, "emp_3", true)).To(BeEmpty())
			Expect(store.NotificationsFor(read, "emp_3", false)).To(HaveLen(1))
		})
	})
})
