// Package icp registers a moving point set onto a fixed one with the
// Iterative Closest Point algorithm.
//
// Construction takes two equally shaped matrices (rows are points) and
// an Options struct. Solve then repeats, for a fixed iteration budget:
//
//  1. match: pair every fixed (target) point with the nearest point of
//     the current moving (reference) set, by brute-force linear search
//     with a first-minimum tie-break;
//  2. fit: solve the paired sets for the optimal rotation and
//     translation (kabsch package);
//  3. accumulate: fold the new rotation into the running one by adding
//     their in-plane angles, overwrite the running translation, apply
//     the accumulated transform to the moving set, and report the
//     registration error to the Observer, if any.
//
// The loop always runs MaxIterations rounds. There is no convergence
// threshold and no early exit; termination is by budget alone. Solve
// is a one-shot call: a second invocation finds the budget spent and
// returns immediately, leaving the accumulated transform intact.
//
// Rotation accumulation is angle-based: each round extracts the
// in-plane angle asin(R[1][0]) from the new rotation, adds it to the
// accumulated angle, and rebuilds the rotation matrix from the sum. In
// 3D the rebuilt matrix only rotates in the xy plane; out-of-plane
// components are not accumulated.
//
// The solver never mutates the matrices handed to New, and the
// accessors return defensive copies. An ICP value is single-owner and
// not safe for concurrent use.
package icp
