package ast

import (
	"encoding/json"
	"fmt"
)

// Dump renders a Program as indented JSON, one object per node tagged with
// its syntactic "kind". It exists for the `triangle ast` subcommand and for
// tests that assert on tree shape without hand-walking the sum types.
func Dump(p *Program) (string, error) {
	tree := commandJSON(p.Cmd)
	b, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func commandJSON(c Command) map[string]any {
	switch n := c.(type) {
	case *EmptyCommand:
		return map[string]any{"kind": "EmptyCommand"}
	case *AssignCommand:
		return map[string]any{"kind": "AssignCommand", "vname": vnameJSON(n.Vname), "expr": exprJSON(n.Expr)}
	case *CallCommand:
		return map[string]any{"kind": "CallCommand", "id": n.Id.Spelling, "actuals": actualSeqJSON(n.Aps)}
	case *SequentialCommand:
		return map[string]any{"kind": "SequentialCommand", "first": commandJSON(n.First), "second": commandJSON(n.Second)}
	case *LetCommand:
		return map[string]any{"kind": "LetCommand", "decl": declJSON(n.Decl), "cmd": commandJSON(n.Cmd)}
	case *IfCommand:
		return map[string]any{"kind": "IfCommand", "cond": exprJSON(n.Expr), "then": commandJSON(n.Then), "else": commandJSON(n.Else)}
	case *WhileCommand:
		return map[string]any{"kind": "WhileCommand", "cond": exprJSON(n.Expr), "body": commandJSON(n.Cmd)}
	default:
		return map[string]any{"kind": fmt.Sprintf("unknown(%T)", c)}
	}
}

func exprJSON(e Expression) map[string]any {
	switch n := e.(type) {
	case *IntegerExpression:
		return map[string]any{"kind": "IntegerExpression", "value": n.Literal.Spelling}
	case *CharacterExpression:
		return map[string]any{"kind": "CharacterExpression", "value": n.Literal.Spelling}
	case *VnameExpression:
		return map[string]any{"kind": "VnameExpression", "vname": vnameJSON(n.Vname)}
	case *CallExpression:
		return map[string]any{"kind": "CallExpression", "id": n.Id.Spelling, "actuals": actualSeqJSON(n.Aps)}
	case *IfExpression:
		return map[string]any{"kind": "IfExpression", "cond": exprJSON(n.Cond), "then": exprJSON(n.Then), "else": exprJSON(n.Else)}
	case *LetExpression:
		return map[string]any{"kind": "LetExpression", "decl": declJSON(n.Decl), "expr": exprJSON(n.Expr)}
	case *UnaryExpression:
		return map[string]any{"kind": "UnaryExpression", "op": n.Op.Spelling, "expr": exprJSON(n.Expr)}
	case *BinaryExpression:
		return map[string]any{"kind": "BinaryExpression", "op": n.Op.Spelling, "left": exprJSON(n.Left), "right": exprJSON(n.Right)}
	case *ArrayExpression:
		return map[string]any{"kind": "ArrayExpression", "elements": arrayAggJSON(n.Agg)}
	case *RecordExpression:
		return map[string]any{"kind": "RecordExpression", "fields": recordAggJSON(n.Agg)}
	default:
		return map[string]any{"kind": fmt.Sprintf("unknown(%T)", e)}
	}
}

func vnameJSON(v Vname) map[string]any {
	switch n := v.(type) {
	case *SimpleVname:
		return map[string]any{"kind": "SimpleVname", "id": n.Name.Spelling}
	case *DotVname:
		return map[string]any{"kind": "DotVname", "base": vnameJSON(n.Base), "field": n.Field.Spelling}
	case *SubscriptVname:
		return map[string]any{"kind": "SubscriptVname", "base": vnameJSON(n.Base), "index": exprJSON(n.Subscript)}
	default:
		return map[string]any{"kind": fmt.Sprintf("unknown(%T)", v)}
	}
}

func declJSON(d Declaration) map[string]any {
	switch n := d.(type) {
	case *ConstDeclaration:
		return map[string]any{"kind": "ConstDeclaration", "id": n.Name.Spelling, "expr": exprJSON(n.Expr)}
	case *VarDeclaration:
		return map[string]any{"kind": "VarDeclaration", "id": n.Name.Spelling, "type": typeJSON(n.Type)}
	case *ProcDeclaration:
		return map[string]any{"kind": "ProcDeclaration", "id": n.Name.Spelling, "formals": formalSeqJSON(n.Formals), "cmd": commandJSON(n.Cmd)}
	case *FuncDeclaration:
		return map[string]any{"kind": "FuncDeclaration", "id": n.Name.Spelling, "formals": formalSeqJSON(n.Formals), "returns": typeJSON(n.ReturnType), "expr": exprJSON(n.Expr)}
	case *TypeDeclaration:
		return map[string]any{"kind": "TypeDeclaration", "id": n.Name.Spelling, "type": typeJSON(n.Type)}
	case *UnaryOperatorDeclaration:
		return map[string]any{"kind": "UnaryOperatorDeclaration", "op": n.Op.Spelling}
	case *BinaryOperatorDeclaration:
		return map[string]any{"kind": "BinaryOperatorDeclaration", "op": n.Op.Spelling}
	case *SequentialDeclaration:
		return map[string]any{"kind": "SequentialDeclaration", "first": declJSON(n.First), "second": declJSON(n.Second)}
	default:
		return map[string]any{"kind": fmt.Sprintf("unknown(%T)", d)}
	}
}

func typeJSON(t TypeDenoter) map[string]any {
	switch n := t.(type) {
	case *AnyTypeDenoter:
		return map[string]any{"kind": "AnyTypeDenoter"}
	case *ErrorTypeDenoter:
		return map[string]any{"kind": "ErrorTypeDenoter"}
	case *BoolTypeDenoter:
		return map[string]any{"kind": "BoolTypeDenoter"}
	case *CharTypeDenoter:
		return map[string]any{"kind": "CharTypeDenoter"}
	case *IntTypeDenoter:
		return map[string]any{"kind": "IntTypeDenoter"}
	case *ArrayTypeDenoter:
		return map[string]any{"kind": "ArrayTypeDenoter", "size": n.Size.Spelling, "element": typeJSON(n.Member)}
	case *RecordTypeDenoter:
		return map[string]any{"kind": "RecordTypeDenoter", "fields": fieldTypeJSON(n.Fields)}
	case *SimpleTypeDenoter:
		return map[string]any{"kind": "SimpleTypeDenoter", "id": n.Name.Spelling}
	default:
		return map[string]any{"kind": fmt.Sprintf("unknown(%T)", t)}
	}
}

func fieldTypeJSON(f FieldTypeDenoter) map[string]any {
	switch n := f.(type) {
	case *SingleFieldTypeDenoter:
		return map[string]any{"kind": "SingleFieldTypeDenoter", "id": n.Name.Spelling, "type": typeJSON(n.Type)}
	case *MultipleFieldTypeDenoter:
		return map[string]any{"kind": "MultipleFieldTypeDenoter", "id": n.Name.Spelling, "type": typeJSON(n.Type), "rest": fieldTypeJSON(n.Rest)}
	default:
		return map[string]any{"kind": fmt.Sprintf("unknown(%T)", f)}
	}
}

func formalSeqJSON(fs FormalParameterSequence) []map[string]any {
	var out []map[string]any
	for fs != nil {
		switch n := fs.(type) {
		case *EmptyFormalParameterSequence:
			return out
		case *SingleFormalParameterSequence:
			out = append(out, formalJSON(n.FP))
			return out
		case *MultipleFormalParameterSequence:
			out = append(out, formalJSON(n.FP))
			fs = n.Rest
		default:
			return out
		}
	}
	return out
}

func formalJSON(fp FormalParameter) map[string]any {
	switch n := fp.(type) {
	case *ConstFormalParameter:
		return map[string]any{"kind": "ConstFormalParameter", "id": n.Name.Spelling, "type": typeJSON(n.Type)}
	case *VarFormalParameter:
		return map[string]any{"kind": "VarFormalParameter", "id": n.Name.Spelling, "type": typeJSON(n.Type)}
	case *ProcFormalParameter:
		return map[string]any{"kind": "ProcFormalParameter", "id": n.Name.Spelling, "formals": formalSeqJSON(n.Formals)}
	case *FuncFormalParameter:
		return map[string]any{"kind": "FuncFormalParameter", "id": n.Name.Spelling, "formals": formalSeqJSON(n.Formals), "returns": typeJSON(n.Type)}
	default:
		return map[string]any{"kind": fmt.Sprintf("unknown(%T)", fp)}
	}
}

func actualSeqJSON(as ActualParameterSequence) []map[string]any {
	var out []map[string]any
	for as != nil {
		switch n := as.(type) {
		case *EmptyActualParameterSequence:
			return out
		case *SingleActualParameterSequence:
			out = append(out, actualJSON(n.AP))
			return out
		case *MultipleActualParameterSequence:
			out = append(out, actualJSON(n.AP))
			as = n.Rest
		default:
			return out
		}
	}
	return out
}

func actualJSON(ap ActualParameter) map[string]any {
	switch n := ap.(type) {
	case *ConstActualParameter:
		return map[string]any{"kind": "ConstActualParameter", "expr": exprJSON(n.Expr)}
	case *VarActualParameter:
		return map[string]any{"kind": "VarActualParameter", "vname": vnameJSON(n.Vname)}
	case *ProcActualParameter:
		return map[string]any{"kind": "ProcActualParameter", "id": n.Id.Spelling}
	case *FuncActualParameter:
		return map[string]any{"kind": "FuncActualParameter", "id": n.Id.Spelling}
	default:
		return map[string]any{"kind": fmt.Sprintf("unknown(%T)", ap)}
	}
}

func arrayAggJSON(a ArrayAggregate) []map[string]any {
	var out []map[string]any
	for a != nil {
		switch n := a.(type) {
		case *SingleArrayAggregate:
			out = append(out, exprJSON(n.Expr))
			return out
		case *MultipleArrayAggregate:
			out = append(out, exprJSON(n.Expr))
			a = n.Rest
		default:
			return out
		}
	}
	return out
}

func recordAggJSON(r RecordAggregate) []map[string]any {
	var out []map[string]any
	for r != nil {
		switch n := r.(type) {
		case *SingleRecordAggregate:
			out = append(out, map[string]any{"id": n.Name.Spelling, "expr": exprJSON(n.Expr)})
			return out
		case *MultipleRecordAggregate:
			out = append(out, map[string]any{"id": n.Name.Spelling, "expr": exprJSON(n.Expr)})
			r = n.Rest
		default:
			return out
		}
	}
	return out
}
