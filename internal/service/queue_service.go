package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"streamsphere/model"
	errorHandler "streamsphere/pkg/error"
	"streamsphere/pkg/metrics"
)

type IRefreshQueue interface {
	Enqueue(job RefreshJob) (int, error)
	Dequeue() (RefreshJob, bool)
	GetIndex(ownerKey string) (int, bool)
	Len() int
	Start(consumerFunc ConsumerFunc, emptyQueueSleep time.Duration)
	Close()
}

// RefreshQueue holds pending recommendation refresh jobs, one per owner.
// The queue is written to queueFile every batchSize operations, every
// saveQueueInterval and on Close, and reloaded on start.
type RefreshQueue struct {
	queue             []RefreshJob
	mutex             sync.Mutex
	queueFile         string
	capacity          int
	workers           int
	saveQueueInterval time.Duration
	batchSize         int
	operationCount    int
	doneChan          chan struct{}
	done              atomic.Bool
	closeOnce         sync.Once
	wg                *sync.WaitGroup
}

func NewRefreshQueue(queueFile string, workers int, capacity int, saveQueueInterval time.Duration, batchSize int) *RefreshQueue {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	dq := &RefreshQueue{
		queue:             make([]RefreshJob, 0, capacity),
		queueFile:         queueFile,
		capacity:          capacity,
		workers:           workers,
		saveQueueInterval: saveQueueInterval,
		batchSize:         batchSize,
		operationCount:    0,
		doneChan:          make(chan struct{}),
		wg:                &sync.WaitGroup{},
	}

	dq.loadQueue()
	if saveQueueInterval > 0 {
		go dq.periodicSaveQueue()
	}

	return dq
}

//---------------------------------------
//---------------------------------------

type ConsumerFunc func(wid int, job RefreshJob)

type RefreshJob struct {
	OwnerKey   string        `json:"ownerKey"`
	Session    model.Session `json:"session"`
	EnqueuedAt time.Time     `json:"enqueuedAt"`
}

var ErrOverflow = errors.New("refresh queue overflow")

//---------------------------------------
//---------------------------------------

// Enqueue adds job unless a job of the same owner is already waiting, in which
// case the waiting job's index is returned.
func (dq *RefreshQueue) Enqueue(job RefreshJob) (int, error) {
	dq.mutex.Lock()
	defer dq.mutex.Unlock()

	if i, ok := dq.indexOf(job.OwnerKey); ok {
		return i, nil
	}

	if len(dq.queue) >= dq.capacity {
		return -1, ErrOverflow
	}

	dq.queue = append(dq.queue, job)
	metrics.RefreshQueueSize.Set(float64(len(dq.queue)))

	dq.checkSave()

	return len(dq.queue) - 1, nil
}

func (dq *RefreshQueue) Dequeue() (RefreshJob, bool) {
	dq.mutex.Lock()
	defer dq.mutex.Unlock()

	if len(dq.queue) == 0 {
		return RefreshJob{}, false
	}

	job := dq.queue[0]
	dq.queue = dq.queue[1:]
	metrics.RefreshQueueSize.Set(float64(len(dq.queue)))

	dq.checkSave()

	return job, true
}

func (dq *RefreshQueue) Len() int {
	dq.mutex.Lock()
	defer dq.mutex.Unlock()
	return len(dq.queue)
}

//---------------------------------------
//---------------------------------------

func (dq *RefreshQueue) Start(consumerFunc ConsumerFunc, emptyQueueSleep time.Duration) {
	for i := 0; i < dq.workers; i++ {
		dq.wg.Add(1)
		go dq.worker(i, consumerFunc, emptyQueueSleep)
	}
}

func (dq *RefreshQueue) worker(wid int, consumerFunc ConsumerFunc, emptyQueueSleep time.Duration) {
	defer dq.wg.Done()

	for {
		if dq.done.Load() {
			return
		}

		job, exist := dq.Dequeue()
		if !exist {
			select {
			case <-dq.doneChan:
				return
			case <-time.After(emptyQueueSleep):
			}
			continue
		}

		consumerFunc(wid, job)
	}
}

//---------------------------------------
//---------------------------------------

func (dq *RefreshQueue) GetIndex(ownerKey string) (int, bool) {
	dq.mutex.Lock()
	defer dq.mutex.Unlock()
	return dq.indexOf(ownerKey)
}

func (dq *RefreshQueue) indexOf(ownerKey string) (int, bool) {
	for i, job := range dq.queue {
		if job.OwnerKey == ownerKey {
			return i, true
		}
	}
	return 0, false
}

//---------------------------------------
//---------------------------------------

func (dq *RefreshQueue) periodicSaveQueue() {
	ticker := time.NewTicker(dq.saveQueueInterval)
	defer ticker.Stop()

	for {
		select {
		case <-dq.doneChan:
			return
		case <-ticker.C:
			dq.mutex.Lock()
			if dq.operationCount > 0 {
				dq.saveQueue()
				dq.operationCount = 0
			}
			dq.mutex.Unlock()
		}
	}
}

func (dq *RefreshQueue) checkSave() {
	dq.operationCount++
	if dq.operationCount >= dq.batchSize {
		dq.saveQueue()
		dq.operationCount = 0
	}
}

func (dq *RefreshQueue) saveQueue() {
	if dq.queueFile == "" {
		return
	}
	data, err := json.Marshal(dq.queue)
	if err != nil {
		errMsg := fmt.Sprintf("Error marshaling refresh queue: %v", err)
		errorHandler.SaveError(errMsg, err)
		return
	}

	err = os.WriteFile(dq.queueFile, data, 0644)
	if err != nil {
		errMsg := fmt.Sprintf("Error saving refresh queue: %v", err)
		errorHandler.SaveError(errMsg, err)
	}
}

func (dq *RefreshQueue) loadQueue() {
	if dq.queueFile == "" {
		return
	}
	dq.mutex.Lock()
	defer dq.mutex.Unlock()

	data, err := os.ReadFile(dq.queueFile)
	if err != nil {
		if !os.IsNotExist(err) {
			errMsg := fmt.Sprintf("Error reading refresh queue file: %v", err)
			errorHandler.SaveError(errMsg, err)
		}
		return
	}

	var jobs []RefreshJob
	err = json.Unmarshal(data, &jobs)
	if err != nil {
		errMsg := fmt.Sprintf("Error unmarshaling refresh queue: %v", err)
		errorHandler.SaveError(errMsg, err)
		return
	}
	for _, job := range jobs {
		if _, ok := dq.indexOf(job.OwnerKey); ok || len(dq.queue) >= dq.capacity {
			continue
		}
		dq.queue = append(dq.queue, job)
	}
	metrics.RefreshQueueSize.Set(float64(len(dq.queue)))
}

func (dq *RefreshQueue) Close() {
	dq.closeOnce.Do(func() {
		dq.done.Store(true)
		close(dq.doneChan)
		dq.wg.Wait()
		dq.mutex.Lock()
		dq.saveQueue()
		dq.mutex.Unlock()
	})
}
