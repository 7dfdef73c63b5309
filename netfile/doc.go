// Package netfile reads and writes flow networks and mutation scripts.
//
// Formats:
//
//   - DIMACS minimum-cost flow ("c", "p min N M", "n ID FLOW",
//     "a SRC DST LOW CAP COST"). Lower bounds must be 0.
//
//   - HCL network descriptions with node and edge blocks (see ReadHCL).
//
//   - Line-oriented mutation scripts replayed against a *core.Graph, so that
//     every subscribed engine sees the resulting events:
//
//     an ID [supply]                          add node
//     dn ID                                   remove node
//     ae ID FROM TO [d|u] [cost] [capacity]   add edge
//     de ID                                   remove edge
//     sn ID KEY VALUE / se ID KEY VALUE       set node / edge attribute
//     rn ID KEY / re ID KEY                   remove node / edge attribute
//     compute                                 call back into the host
//
// Readers validate the whole input and return every problem found, combined
// with go.uber.org/multierr.
package netfile
