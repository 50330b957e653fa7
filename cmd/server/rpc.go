package main

import (
	fractex "github.com/rice8y/FracTeX"
)

// coordinator is the rpc service workers and consumers talk to. Workers
// pull tiles with NextTile and push results with SubmitTile; consumers
// block on Records until the job is done.
type coordinator struct {
	sched *tileScheduler
}

func (c *coordinator) Hello(_ fractex.None, _ *fractex.None) error {
	c.sched.incActiveWorker()
	return nil
}

func (c *coordinator) Goodbye(_ fractex.None, _ *fractex.None) error {
	c.sched.decActiveWorkers()
	return nil
}

func (c *coordinator) NextTile(_ fractex.None, reply *fractex.NextTileReply) error {
	t, found := c.sched.popTile()
	if !found {
		reply.Found = false
		return nil
	}
	reply.Found = true
	reply.Task = c.sched.task(t)
	return nil
}

func (c *coordinator) SubmitTile(res fractex.TileResult, _ *fractex.None) error {
	c.sched.tileFinished(res)
	return nil
}

func (c *coordinator) Progress(_ fractex.None, reply *fractex.Progress) error {
	*reply = c.sched.progress()
	return nil
}

func (c *coordinator) Records(_ fractex.None, reply *fractex.RecordsReply) error {
	reply.Records = c.sched.records()
	return nil
}
