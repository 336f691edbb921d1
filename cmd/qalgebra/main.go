// Command qalgebra evaluates bra-ket algebra expressions from the shell.
//
// Operands are written kind=value, where kind is ket, bra or op and value is
// a JSON literal or @file (JSON, or MessagePack when the name ends in
// .msgpack). Bare arguments are scalars such as 2, -0.5 or 1+2i.
//
//	qalgebra apply 'op=[[0,1],[1,0]]' 'ket=[1,0]'
//	qalgebra check 'op=[[0,"-1i"],["1i",0]]'
//	qalgebra commutator 'op=[[0,1],[1,0]]' 'op=[[1,0],[0,-1]]'
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
