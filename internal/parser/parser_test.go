package parser_test

import (
	"testing"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/parser"
	"volt/internal/source"
)

// parseString прогоняет парсер по тестовой строке.
func parseString(input string) (*ast.Module, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.v", []byte(input))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	result := parser.ParseFile(fs, lx, parser.Options{})
	return result.Module, result.Bag
}

// mustParse требует разбор без единой ошибки.
func mustParse(t *testing.T, input string) *ast.Module {
	t.Helper()
	mod, bag := parseString(input)
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Logf("diagnostic: [%s] %s", d.Code.ID(), d.Message)
		}
		t.Fatal("unexpected parse errors")
	}
	if mod == nil {
		t.Fatal("nil module without errors")
	}
	return mod
}

func TestParse_EmptyModule(t *testing.T) {
	mod := mustParse(t, "module empty(); endmodule")
	if mod.Name != "empty" {
		t.Errorf("Name = %q, want %q", mod.Name, "empty")
	}
	if len(mod.Ports) != 0 || len(mod.Processes) != 0 {
		t.Errorf("expected no ports and no processes, got %d/%d", len(mod.Ports), len(mod.Processes))
	}
}

func TestParse_Ports(t *testing.T) {
	mod := mustParse(t, `
module m(input clk, input [7:0] a, output reg [3:0] q, output wire y);
endmodule
`)
	if len(mod.Ports) != 4 {
		t.Fatalf("got %d ports, want 4", len(mod.Ports))
	}

	tests := []struct {
		name  string
		dir   ast.PortDir
		isReg bool
		width int
	}{
		{"clk", ast.DirInput, false, 1},
		{"a", ast.DirInput, false, 8},
		{"q", ast.DirOutput, true, 4},
		{"y", ast.DirOutput, false, 1},
	}
	for i, tt := range tests {
		p := mod.Ports[i]
		if p.Name != tt.name {
			t.Errorf("port %d: Name = %q, want %q", i, p.Name, tt.name)
		}
		if p.Dir != tt.dir {
			t.Errorf("port %q: Dir = %v, want %v", tt.name, p.Dir, tt.dir)
		}
		if p.IsReg != tt.isReg {
			t.Errorf("port %q: IsReg = %v, want %v", tt.name, p.IsReg, tt.isReg)
		}
		if p.Width() != tt.width {
			t.Errorf("port %q: Width = %d, want %d", tt.name, p.Width(), tt.width)
		}
	}
}

func TestParse_AlwaysStar(t *testing.T) {
	mod := mustParse(t, `
module m(input a, output y);
	always @(*) y = a;
endmodule
`)
	if len(mod.Processes) != 1 {
		t.Fatalf("got %d processes, want 1", len(mod.Processes))
	}
	proc := mod.Processes[0]
	if !proc.Star {
		t.Error("expected Star process")
	}
	if proc.Clocked() {
		t.Error("@(*) process must not be clocked")
	}
	if proc.Body == nil || proc.Body.Kind != ast.StmtAssign {
		t.Fatalf("expected assignment body, got %+v", proc.Body)
	}
	if proc.Body.Assign.NonBlocking {
		t.Error("y = a must be a blocking assignment")
	}
}

func TestParse_PosedgeClock(t *testing.T) {
	mod := mustParse(t, `
module m(input clk, output reg q);
	always @(posedge clk) q <= q;
endmodule
`)
	proc := mod.Processes[0]
	if !proc.Clocked() {
		t.Fatal("posedge process must be clocked")
	}
	if proc.ClockName() != "clk" {
		t.Errorf("ClockName = %q, want %q", proc.ClockName(), "clk")
	}
	if !proc.Body.Assign.NonBlocking {
		t.Error("q <= q must be non-blocking")
	}
}

func TestParse_IfElseChain(t *testing.T) {
	mod := mustParse(t, `
module m(input clk, input rst, input en, input d, output reg q);
	always @(posedge clk) begin
		if (rst)
			q <= 0;
		else if (en)
			q <= d;
	end
endmodule
`)
	body := mod.Processes[0].Body
	if body.Kind != ast.StmtBlock || len(body.Block) != 1 {
		t.Fatalf("expected begin/end with one statement, got %+v", body)
	}
	ifStmt := body.Block[0]
	if ifStmt.Kind != ast.StmtIf {
		t.Fatalf("expected if, got %v", ifStmt.Kind)
	}
	if ifStmt.If.Else == nil || ifStmt.If.Else.Kind != ast.StmtIf {
		t.Fatal("expected else-if in the chain")
	}
	inner := ifStmt.If.Else
	if inner.If.Else != nil {
		t.Error("inner if must have no else branch")
	}
}

func TestParse_Precedence(t *testing.T) {
	// a + b == c && d || e разбирается как (((a+b) == c) && d) || e
	mod := mustParse(t, `
module m(input a, input b, input c, input d, input e, output y);
	always @(*) y = a + b == c && d || e;
endmodule
`)
	rhs := mod.Processes[0].Body.Assign.RHS
	if rhs.Kind != ast.ExprBinary || rhs.Binary.Op != ast.BinLor {
		t.Fatalf("top operator = %v, want ||", rhs.Binary.Op)
	}
	land := rhs.Binary.Left
	if land.Binary.Op != ast.BinLand {
		t.Fatalf("second operator = %v, want &&", land.Binary.Op)
	}
	eq := land.Binary.Left
	if eq.Binary.Op != ast.BinEq {
		t.Fatalf("third operator = %v, want ==", eq.Binary.Op)
	}
	add := eq.Binary.Left
	if add.Binary.Op != ast.BinAdd {
		t.Fatalf("innermost operator = %v, want +", add.Binary.Op)
	}
}

func TestParse_Parens(t *testing.T) {
	// скобки ломают приоритет: a && (b || c)
	mod := mustParse(t, `
module m(input a, input b, input c, output y);
	always @(*) y = a && (b || c);
endmodule
`)
	rhs := mod.Processes[0].Body.Assign.RHS
	if rhs.Binary.Op != ast.BinLand {
		t.Fatalf("top operator = %v, want &&", rhs.Binary.Op)
	}
	if rhs.Binary.Right.Binary.Op != ast.BinLor {
		t.Fatalf("inner operator = %v, want ||", rhs.Binary.Right.Binary.Op)
	}
}

func TestParse_SizedLiteralRHS(t *testing.T) {
	mod := mustParse(t, `
module m(output reg [3:0] q, input clk);
	always @(posedge clk) q <= 4'b1010;
endmodule
`)
	rhs := mod.Processes[0].Body.Assign.RHS
	if rhs.Kind != ast.ExprIntLit {
		t.Fatalf("expected literal RHS, got %v", rhs.Kind)
	}
	if rhs.Lit.Text != "4'b1010" {
		t.Errorf("Lit.Text = %q, want %q", rhs.Lit.Text, "4'b1010")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"no module", "wire x;", diag.SynNoModule},
		{"bad port", "module m(inputt clk); endmodule", diag.SynBadPort},
		{"bad range", "module m(input [a:0] x); endmodule", diag.SynBadRange},
		{"missing semicolon", "module m(input a, output y);\nalways @(*) y = a\nendmodule", diag.SynExpectSemicolon},
		{"bad sens list", "module m(input a, output y);\nalways @() y = a;\nendmodule", diag.SynBadSensList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseString(tt.input)
			if !bag.HasErrors() {
				t.Fatal("expected parse errors")
			}
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				for _, d := range bag.Items() {
					t.Logf("got: [%s] %s", d.Code.ID(), d.Message)
				}
				t.Errorf("expected diagnostic %s", tt.code.ID())
			}
		})
	}
}

func TestParse_RecoversAfterBadStatement(t *testing.T) {
	// после сломанного always следующий процесс всё равно разбирается
	mod, bag := parseString(`
module m(input a, input clk, output reg q, output y);
	always @(oops oops) q <= a;
	always @(*) y = a;
endmodule
`)
	if !bag.HasErrors() {
		t.Fatal("expected errors from the first process")
	}
	if mod == nil {
		t.Fatal("module lost during recovery")
	}
	if len(mod.Processes) != 1 {
		t.Fatalf("got %d processes after recovery, want 1", len(mod.Processes))
	}
	if !mod.Processes[0].Star {
		t.Error("surviving process must be the @(*) one")
	}
}
